package entity

import "time"

// Category representa una categoría de productos. Name es único.
type Category struct {
	Key        int64
	Name       string
	CreatedAt  time.Time
	ModifiedAt *time.Time
	CreatedBy  *int64
	ModifiedBy *int64
	RowVersion int64
}

func (c *Category) RecordKey() int64     { return c.Key }
func (c *Category) RecordVersion() int64 { return c.RowVersion }
