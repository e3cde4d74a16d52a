package dto

import "time"

// CustomerCreateRequest datos para crear un cliente (también usado por el
// registro de clientes en customer-auth).
type CustomerCreateRequest struct {
	Identification string `json:"identification" validate:"required,min=9,max=15"`
	Name           string `json:"name" validate:"required,max=100"`
	Email          string `json:"email" validate:"required,email,max=100"`
	Phone          string `json:"phone" validate:"required,min=8,max=20"`
	Address        string `json:"address" validate:"required,max=255"`
	Password       string `json:"password" validate:"required,max=256"`
	CreatedBy      *int64 `json:"created_by"`
}

// CustomerUpdateRequest datos para actualizar un cliente. Mismas reglas de
// Key/RowVersion/Password que UserUpdateRequest.
type CustomerUpdateRequest struct {
	Key            int64  `json:"key" validate:"required"`
	Identification string `json:"identification" validate:"required,min=9,max=15"`
	Name           string `json:"name" validate:"required,max=100"`
	Email          string `json:"email" validate:"required,email,max=100"`
	Phone          string `json:"phone" validate:"required,min=8,max=20"`
	Address        string `json:"address" validate:"required,max=255"`
	Password       string `json:"password" validate:"omitempty,max=256"`
	ModifiedBy     *int64 `json:"modified_by"`
	RowVersion     int64  `json:"row_version" validate:"min=0"`
}

// CustomerResponse representación de lectura de un cliente (sin password).
type CustomerResponse struct {
	Key              int64      `json:"key"`
	Identification   string     `json:"identification"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	Address          string     `json:"address"`
	CreationDate     time.Time  `json:"creation_date"`
	ModificationDate *time.Time `json:"modification_date"`
	CreatedBy        *int64     `json:"created_by"`
	ModifiedBy       *int64     `json:"modified_by"`
	RowVersion       int64      `json:"row_version"`
}

// CustomerLoginRequest credenciales de login de cliente.
type CustomerLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
