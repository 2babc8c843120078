package screens

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/plywood-inventory/internal/application/dto"
	"github.com/jhoicas/plywood-inventory/internal/domain"
)

// Cart carrito local de un navegador, indexado por id de producto. Nunca se envía al gateway.
type Cart struct {
	mu    sync.Mutex
	order []string
	lines map[string]*dto.CartLineDTO
}

// NewCart construye un carrito vacío.
func NewCart() *Cart {
	return &Cart{lines: make(map[string]*dto.CartLineDTO)}
}

// Add suma una unidad de item. Sin stock, o sin unidades disponibles adicionales, → domain.ErrOutOfStock.
func (c *Cart) Add(item dto.CatalogItemDTO) error {
	if !item.InStock {
		return domain.ErrOutOfStock
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	line, ok := c.lines[item.ID]
	if !ok {
		c.order = append(c.order, item.ID)
		line = &dto.CartLineDTO{}
		c.lines[item.ID] = line
	}
	if line.Quantity+1 > item.Available {
		return domain.ErrOutOfStock
	}
	line.Item = item
	line.Quantity++
	return nil
}

// Count unidades totales en el carrito.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Snapshot líneas en orden de primera adición, con subtotales y total.
func (c *Cart) Snapshot() dto.CartDTO {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := dto.CartDTO{Lines: make([]dto.CartLineDTO, 0, len(c.order)), Total: decimal.Zero}
	for _, id := range c.order {
		l := c.lines[id]
		if l.Quantity == 0 {
			continue
		}
		line := *l
		line.Subtotal = l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
		out.Lines = append(out.Lines, line)
		out.TotalItems += line.Quantity
		out.Total = out.Total.Add(line.Subtotal)
	}
	return out
}
