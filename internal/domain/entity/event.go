package entity

import (
	"fmt"
	"time"
)

// Event representa un evento (boda, corporativo, social) con su estado de
// workflow y su colección de movimientos financieros (por evento_id).
//
// Version soporta concurrencia optimista: toda actualización de estado
// compara la versión leída contra la persistida; si difieren, la operación
// falla con ErrConcurrentModification y el caller debe releer y reintentar.
// Los eventos nunca se eliminan físicamente: Activo=false es borrado lógico
// y cascadea a sus movimientos.
type Event struct {
	ID        string
	Codigo    string // único y legible, ej: "EVT-2024-0042"
	Nombre    string
	ClienteID string
	EstadoID  string
	Activo    bool
	Version   int64
	Fecha     time.Time // fecha del evento
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EventCode arma el código legible de un evento a partir del año y el consecutivo.
func EventCode(year int, seq int64) string {
	return fmt.Sprintf("EVT-%d-%04d", year, seq)
}
