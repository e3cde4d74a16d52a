package dto

import "time"

// UserCreateRequest datos para crear un usuario. Password llega en claro y se
// hashea antes de persistir; nunca se devuelve.
type UserCreateRequest struct {
	Identification string `json:"identification" validate:"required,min=9,max=15"`
	Name           string `json:"name" validate:"required,max=100"`
	Email          string `json:"email" validate:"required,email,max=100"`
	Phone          string `json:"phone" validate:"required,min=8,max=20"`
	Address        string `json:"address" validate:"required,max=255"`
	Password       string `json:"password" validate:"required,max=256"`
	Role           string `json:"role" validate:"required,max=100"`
	CreatedBy      *int64 `json:"created_by"`
}

// UserUpdateRequest datos para actualizar un usuario. Debe incluir la misma
// Key del path y el RowVersion leído. Password es opcional: si viene y ya no
// coincide con el hash almacenado, cuenta como cambio y se rehashea.
type UserUpdateRequest struct {
	Key            int64  `json:"key" validate:"required"`
	Identification string `json:"identification" validate:"required,min=9,max=15"`
	Name           string `json:"name" validate:"required,max=100"`
	Email          string `json:"email" validate:"required,email,max=100"`
	Phone          string `json:"phone" validate:"required,min=8,max=20"`
	Address        string `json:"address" validate:"required,max=255"`
	Password       string `json:"password" validate:"omitempty,max=256"`
	Role           string `json:"role" validate:"required,max=100"`
	ModifiedBy     *int64 `json:"modified_by"`
	RowVersion     int64  `json:"row_version" validate:"min=0"`
}

// UserResponse representación de lectura de un usuario (sin password).
type UserResponse struct {
	Key              int64      `json:"key"`
	Identification   string     `json:"identification"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	Address          string     `json:"address"`
	Role             string     `json:"role"`
	CreationDate     time.Time  `json:"creation_date"`
	ModificationDate *time.Time `json:"modification_date"`
	CreatedBy        *int64     `json:"created_by"`
	ModifiedBy       *int64     `json:"modified_by"`
	RowVersion       int64      `json:"row_version"`
}

// UserLoginRequest credenciales de login de usuario.
type UserLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
