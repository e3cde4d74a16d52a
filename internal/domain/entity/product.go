package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Name es único.
// SuppliedBy y CategorizedBy son FKs con borrado RESTRICT: no se puede
// eliminar un proveedor o categoría con productos vivos.
type Product struct {
	Key               int64
	Image             []byte
	Name              string
	Detail            string
	Price             decimal.Decimal
	AvailableQuantity int
	SuppliedBy        int64
	CategorizedBy     int64
	CreatedAt         time.Time
	ModifiedAt        *time.Time
	CreatedBy         *int64
	ModifiedBy        *int64
	RowVersion        int64
}

func (p *Product) RecordKey() int64     { return p.Key }
func (p *Product) RecordVersion() int64 { return p.RowVersion }
