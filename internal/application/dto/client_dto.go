package dto

import "time"

// CreateClientRequest alta de cliente.
type CreateClientRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
}

// ClientResponse representación de un cliente.
type ClientResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Telefono  string    `json:"telefono"`
	CreatedAt time.Time `json:"created_at"`
}

// ClientListResponse listado paginado de clientes.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
