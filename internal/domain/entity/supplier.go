package entity

// Supplier proveedor de triplay. Las láminas lo referencian por nombre.
type Supplier struct {
	ID            string `json:"id" mapstructure:"id"`
	Name          string `json:"name" mapstructure:"name"`
	ContactPerson string `json:"contactPerson" mapstructure:"contact_person"`
	Email         string `json:"email" mapstructure:"email"`
	Phone         string `json:"phone" mapstructure:"phone"`
	Address       string `json:"address" mapstructure:"address"`
}
