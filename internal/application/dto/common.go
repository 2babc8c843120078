package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Redirect login sugerido cuando el acceso fue denegado en /api/*.
	Redirect string `json:"redirect,omitempty"`
}

// LoadingResponse cuerpo de 202 mientras la sesión del navegador aún carga.
type LoadingResponse struct {
	Loading bool `json:"loading"`
}

// PageResponse describe una pantalla sin datos (login, registro, placeholders).
type PageResponse struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Message string `json:"message,omitempty"`
}
