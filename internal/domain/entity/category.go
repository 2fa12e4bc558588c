package entity

import "time"

// Category representa una categoría de gasto/provisión (catálogo de referencia).
// La clave es única y normalizada (minúsculas, sin acentos, espacios → "_").
type Category struct {
	ID        string
	Nombre    string
	Clave     string // clave única, ej: "salon_palmas" para "Salón Palmas"
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClaveSinCategoria agrupa movimientos sin categoría en los resúmenes.
// Nunca se descartan silenciosamente.
const ClaveSinCategoria = "sin_categoria"
