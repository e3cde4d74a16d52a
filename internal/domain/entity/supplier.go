package entity

import "time"

// Supplier representa un proveedor de productos. Name es único.
type Supplier struct {
	Key        int64
	Name       string
	CreatedAt  time.Time
	ModifiedAt *time.Time
	CreatedBy  *int64
	ModifiedBy *int64
	RowVersion int64
}

func (s *Supplier) RecordKey() int64     { return s.Key }
func (s *Supplier) RecordVersion() int64 { return s.RowVersion }
