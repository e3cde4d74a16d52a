package dto

import "time"

// SupplierCreateRequest datos para crear un proveedor.
type SupplierCreateRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	CreatedBy *int64 `json:"created_by"`
}

// SupplierUpdateRequest datos para actualizar un proveedor.
type SupplierUpdateRequest struct {
	Key        int64  `json:"key" validate:"required"`
	Name       string `json:"name" validate:"required,max=100"`
	ModifiedBy *int64 `json:"modified_by"`
	RowVersion int64  `json:"row_version" validate:"min=0"`
}

// SupplierResponse representación de lectura de un proveedor.
type SupplierResponse struct {
	Key              int64      `json:"key"`
	Name             string     `json:"name"`
	CreationDate     time.Time  `json:"creation_date"`
	ModificationDate *time.Time `json:"modification_date"`
	CreatedBy        *int64     `json:"created_by"`
	ModifiedBy       *int64     `json:"modified_by"`
	RowVersion       int64      `json:"row_version"`
}
