package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductCreateRequest datos para crear un producto. Image viaja como base64
// en JSON (encoding/json lo decodifica a []byte).
type ProductCreateRequest struct {
	Image             []byte          `json:"image"`
	Name              string          `json:"name" validate:"required,max=100"`
	Detail            string          `json:"detail" validate:"required,max=500"`
	Price             decimal.Decimal `json:"price" validate:"required,gt=0,lt=1000000"`
	AvailableQuantity int             `json:"available_quantity" validate:"min=0"`
	CreatedBy         *int64          `json:"created_by"`
	SuppliedBy        int64           `json:"supplied_by" validate:"required"`
	CategorizedBy     int64           `json:"categorized_by" validate:"required"`
}

// ProductUpdateRequest datos para actualizar un producto.
type ProductUpdateRequest struct {
	Key               int64           `json:"key" validate:"required"`
	Image             []byte          `json:"image"`
	Name              string          `json:"name" validate:"required,max=100"`
	Detail            string          `json:"detail" validate:"required,max=500"`
	Price             decimal.Decimal `json:"price" validate:"required,gt=0,lt=1000000"`
	AvailableQuantity int             `json:"available_quantity" validate:"min=0"`
	ModifiedBy        *int64          `json:"modified_by"`
	SuppliedBy        int64           `json:"supplied_by" validate:"required"`
	CategorizedBy     int64           `json:"categorized_by" validate:"required"`
	RowVersion        int64           `json:"row_version" validate:"min=0"`
}

// ProductResponse representación de lectura de un producto.
type ProductResponse struct {
	Key               int64           `json:"key"`
	Image             []byte          `json:"image"`
	Name              string          `json:"name"`
	Detail            string          `json:"detail"`
	Price             decimal.Decimal `json:"price"`
	AvailableQuantity int             `json:"available_quantity"`
	SuppliedBy        int64           `json:"supplied_by"`
	CategorizedBy     int64           `json:"categorized_by"`
	CreationDate      time.Time       `json:"creation_date"`
	ModificationDate  *time.Time      `json:"modification_date"`
	CreatedBy         *int64          `json:"created_by"`
	ModifiedBy        *int64          `json:"modified_by"`
	RowVersion        int64           `json:"row_version"`
}
