package entity

import "time"

// TransitionRecord es una entrada inmutable del historial de transiciones de
// un evento. El historial es append-only: nunca se actualiza ni se borra.
// Evidencia guarda, en JSON, el payload de validación usado en transiciones
// con cierre financiero (pendientes en cero al momento de la transición).
type TransitionRecord struct {
	ID            string
	EventoID      string
	EstadoOrigen  string
	EstadoDestino string
	Actor         string
	Evidencia     string // JSON, vacío si la transición no fue validada
	CreatedAt     time.Time
}
