package dto

// MessageResponse cuerpo estándar para errores y avisos de la API.
// Mismo formato `{"message": "..."}` en 400/401/404/409.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse respuesta de login y registro de clientes.
type TokenResponse struct {
	Token string `json:"token"`
}
