package items

import "time"

// Item representa un registro persistido en DB.
// Price viaja como float64 hacia los callers aunque la columna es
// numeric(10,2); el cast a float8 vive en los SELECT del repo.
type Item struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateItemInput representa el payload para crear un item.
// Quantity y Price en nil se resuelven a 0 / 0.0 antes del INSERT.
type CreateItemInput struct {
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Quantity    *int     `json:"quantity,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

// UpdateItemInput representa una actualización parcial.
// nil significa "conservar el valor actual"; Description en nil no
// puede distinguirse de "limpiar a NULL", así que nunca limpia.
type UpdateItemInput struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Quantity    *int     `json:"quantity,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}
