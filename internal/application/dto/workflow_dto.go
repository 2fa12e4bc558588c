package dto

import "time"

// TransitionRequest intento de transición de estado de un evento.
type TransitionRequest struct {
	EstadoDestinoID string `json:"estado_destino_id"`
}

// TransitionResponse resultado de una transición aceptada.
type TransitionResponse struct {
	EventoID     string `json:"evento_id"`
	EstadoID     string `json:"estado_id"`
	EstadoClave  string `json:"estado_clave"`
	EstadoNombre string `json:"estado_nombre"`
	Version      int64  `json:"version"`
}

// TransitionRecordResponse entrada del historial de transiciones.
type TransitionRecordResponse struct {
	ID            string    `json:"id"`
	EventoID      string    `json:"evento_id"`
	EstadoOrigen  string    `json:"estado_origen"`
	EstadoDestino string    `json:"estado_destino"`
	Actor         string    `json:"actor"`
	Evidencia     string    `json:"evidencia,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// WorkflowStateResponse estado del catálogo.
type WorkflowStateResponse struct {
	ID             string `json:"id"`
	Clave          string `json:"clave"`
	Nombre         string `json:"nombre"`
	Orden          int    `json:"orden"`
	Color          string `json:"color"`
	Terminal       bool   `json:"terminal"`
	Excepcion      bool   `json:"excepcion"`
	RequiereCierre bool   `json:"requiere_cierre"`
}
