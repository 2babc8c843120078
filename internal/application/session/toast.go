package session

import "github.com/jhoicas/plywood-inventory/internal/application/dto"

// Variantes de Toast.
const (
	VariantDefault     = "default"
	VariantDestructive = "destructive"
)

// Toast notificación pendiente del navegador (ver dto.Toast).
type Toast = dto.Toast

func successToast(title, description string) Toast {
	return Toast{Title: title, Description: description, Variant: VariantDefault}
}

func failureToast(title string, err error, fallback string) Toast {
	desc := fallback
	if err != nil && err.Error() != "" {
		desc = err.Error()
	}
	return Toast{Title: title, Description: desc, Variant: VariantDestructive}
}
