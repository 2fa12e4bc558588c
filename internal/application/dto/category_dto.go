package dto

import "time"

// CreateCategoryRequest alta de categoría; la clave se normaliza del nombre
// si no se manda explícita.
type CreateCategoryRequest struct {
	Nombre string `json:"nombre"`
	Clave  string `json:"clave,omitempty"`
}

// UpdateCategoryRequest solo permite renombrar; la clave es inmutable.
type UpdateCategoryRequest struct {
	Nombre string `json:"nombre"`
}

// CategoryResponse representación de una categoría.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Clave     string    `json:"clave"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryListResponse listado del catálogo.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
}
