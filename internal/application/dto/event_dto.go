package dto

import "time"

// CreateEventRequest alta de un evento. El código EVT-<año>-<seq> lo asigna el sistema.
type CreateEventRequest struct {
	Nombre    string    `json:"nombre"`
	ClienteID string    `json:"cliente_id"`
	Fecha     time.Time `json:"fecha"`
}

// EventResponse representación de un evento hacia el caller.
type EventResponse struct {
	ID          string    `json:"id"`
	Codigo      string    `json:"codigo"`
	Nombre      string    `json:"nombre"`
	ClienteID   string    `json:"cliente_id"`
	EstadoID    string    `json:"estado_id"`
	EstadoClave string    `json:"estado_clave,omitempty"`
	Activo      bool      `json:"activo"`
	Version     int64     `json:"version"`
	Fecha       time.Time `json:"fecha"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventListResponse listado paginado de eventos.
type EventListResponse struct {
	Items []EventResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
