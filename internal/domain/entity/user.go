package entity

import "time"

// User representa un usuario interno del sistema (operadores de la API).
// Identification y Email son únicos a nivel de negocio y de índice.
type User struct {
	Key            int64
	Identification string
	Name           string
	Email          string
	Phone          string
	Address        string
	PasswordHash   string // bcrypt, nunca se expone en DTOs
	Role           string
	CreatedAt      time.Time  // la asigna la base de datos en el insert
	ModifiedAt     *time.Time // nil hasta la primera actualización efectiva
	CreatedBy      *int64     // FK opcional a users.key
	ModifiedBy     *int64     // FK opcional a users.key
	RowVersion     int64      // token de concurrencia optimista; lo incrementa el store
}

// RecordKey devuelve la clave del registro (contrato del protocolo versionado).
func (u *User) RecordKey() int64 { return u.Key }

// RecordVersion devuelve el RowVersion leído (contrato del protocolo versionado).
func (u *User) RecordVersion() int64 { return u.RowVersion }
