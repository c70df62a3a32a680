package entity

import "time"

// Customer es un cliente identificado por teléfono (único). Se hace upsert al
// registrar pedidos para mantener el nombre actualizado.
type Customer struct {
	ID        int64
	Name      string
	Phone     string
	CreatedAt time.Time
}
