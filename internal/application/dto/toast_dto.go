package dto

// Toast notificación visible para el usuario; la capa HTTP la entrega en la siguiente respuesta.
type Toast struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant"`
}
