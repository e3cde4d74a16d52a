package entity

import "time"

// Customer representa un cliente del negocio. Puede autenticarse (login propio)
// pero no tiene rol: sus tokens no llevan claim de rol.
type Customer struct {
	Key            int64
	Identification string
	Name           string
	Email          string
	Phone          string
	Address        string
	PasswordHash   string
	CreatedAt      time.Time
	ModifiedAt     *time.Time
	CreatedBy      *int64
	ModifiedBy     *int64
	RowVersion     int64
}

func (c *Customer) RecordKey() int64     { return c.Key }
func (c *Customer) RecordVersion() int64 { return c.RowVersion }
