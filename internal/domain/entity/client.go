package entity

import "time"

// Client representa el cliente dueño de uno o más eventos.
type Client struct {
	ID        string
	Nombre    string
	Email     string
	Telefono  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
