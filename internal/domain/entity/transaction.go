package entity

import "time"

// Tipos de transacción de inventario.
const (
	TransactionAddition = "addition"
	TransactionRemoval  = "removal"
)

// Transaction entrada del log de movimientos (solo inserción, nunca se modifica).
type Transaction struct {
	ID          string    `json:"id" mapstructure:"id"`
	Type        string    `json:"type" mapstructure:"type"`
	PlywoodID   string    `json:"plywoodId" mapstructure:"plywood_id"`
	Quantity    int       `json:"quantity" mapstructure:"quantity"`
	Date        time.Time `json:"date" mapstructure:"date"`
	PerformedBy string    `json:"performedBy" mapstructure:"performed_by"`
	Reason      string    `json:"reason" mapstructure:"reason"`
	Notes       string    `json:"notes,omitempty" mapstructure:"notes"`
}
