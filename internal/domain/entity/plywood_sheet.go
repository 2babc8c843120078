package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold umbral de presentación: cantidad estrictamente menor se considera stock bajo.
const LowStockThreshold = 10

// PlywoodSheet lote de láminas de triplay en bodega. Dimensiones en mm.
// Supplier es el nombre del proveedor (desnormalizado, sin integridad referencial).
type PlywoodSheet struct {
	ID            string          `json:"id" mapstructure:"id"`
	Type          string          `json:"type" mapstructure:"type"`
	Grade         string          `json:"grade" mapstructure:"grade"`
	Thickness     int             `json:"thickness" mapstructure:"thickness"`
	Width         int             `json:"width" mapstructure:"width"`
	Length        int             `json:"length" mapstructure:"length"`
	Quantity      int             `json:"quantity" mapstructure:"quantity"`
	Location      string          `json:"location" mapstructure:"location"`
	PurchaseDate  time.Time       `json:"purchaseDate" mapstructure:"purchase_date"`
	PurchasePrice decimal.Decimal `json:"purchasePrice" mapstructure:"purchase_price"`
	Supplier      string          `json:"supplier" mapstructure:"supplier"`
	Notes         string          `json:"notes,omitempty" mapstructure:"notes"`
	LastUpdated   time.Time       `json:"lastUpdated" mapstructure:"last_updated"`
	UpdatedBy     string          `json:"updatedBy" mapstructure:"updated_by"`
}

// IsLowStock informa si la cantidad está por debajo del umbral de presentación.
func (p PlywoodSheet) IsLowStock() bool {
	return p.Quantity < LowStockThreshold
}
