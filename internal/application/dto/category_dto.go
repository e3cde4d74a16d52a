package dto

import "time"

// CategoryCreateRequest datos para crear una categoría.
type CategoryCreateRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	CreatedBy *int64 `json:"created_by"`
}

// CategoryUpdateRequest datos para actualizar una categoría.
type CategoryUpdateRequest struct {
	Key        int64  `json:"key" validate:"required"`
	Name       string `json:"name" validate:"required,max=100"`
	ModifiedBy *int64 `json:"modified_by"`
	RowVersion int64  `json:"row_version" validate:"min=0"`
}

// CategoryResponse representación de lectura de una categoría.
type CategoryResponse struct {
	Key              int64      `json:"key"`
	Name             string     `json:"name"`
	CreationDate     time.Time  `json:"creation_date"`
	ModificationDate *time.Time `json:"modification_date"`
	CreatedBy        *int64     `json:"created_by"`
	ModifiedBy       *int64     `json:"modified_by"`
	RowVersion       int64      `json:"row_version"`
}
