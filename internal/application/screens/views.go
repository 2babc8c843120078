package screens

import "sync"

// Views estado de pantalla propio de un navegador: lista de inventario montada y carrito.
type Views struct {
	mu        sync.Mutex
	inventory *InventoryView
	cart      *Cart
}

// NewViews construye el estado vacío.
func NewViews() *Views {
	return &Views{inventory: &InventoryView{}, cart: NewCart()}
}

// Inventory lista de inventario del navegador.
func (v *Views) Inventory() *InventoryView {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.inventory
}

// Cart carrito del navegador.
func (v *Views) Cart() *Cart {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cart
}

// Reset descarta la lista y el carrito (cierre de sesión).
func (v *Views) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.inventory = &InventoryView{}
	v.cart = NewCart()
}
