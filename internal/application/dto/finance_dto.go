package dto

// DesgloseGastoDTO acumulados de gasto de una categoría.
type DesgloseGastoDTO struct {
	Pagado    string `json:"pagado"`
	Pendiente string `json:"pendiente"`
}

// DesgloseIngresoDTO acumulados de ingreso de una categoría.
type DesgloseIngresoDTO struct {
	Cobrado   string `json:"cobrado"`
	Pendiente string `json:"pendiente"`
}

// OmitidaDTO movimiento excluido del resumen por validación.
type OmitidaDTO struct {
	EntradaID string `json:"entrada_id"`
	Motivo    string `json:"motivo"`
}

// FinancialSummaryResponse resumen financiero de un evento. Montos como
// string con dos decimales para no perder precisión en JSON.
type FinancialSummaryResponse struct {
	EventoID           string `json:"evento_id"`
	Codigo             string `json:"codigo"`
	IngresosTotales    string `json:"ingresos_totales"`
	IngresosCobrados   string `json:"ingresos_cobrados"`
	IngresosPendientes string `json:"ingresos_pendientes"`
	GastosTotales      string `json:"gastos_totales"`
	GastosPagados      string `json:"gastos_pagados"`
	GastosPendientes   string `json:"gastos_pendientes"`
	ProvisionesTotal   string `json:"provisiones_total"`
	UtilidadReal       string `json:"utilidad_real"`
	MargenRealPct      string `json:"margen_real_pct"`

	GastosPorCategoria      map[string]DesgloseGastoDTO   `json:"gastos_por_categoria"`
	IngresosPorCategoria    map[string]DesgloseIngresoDTO `json:"ingresos_por_categoria"`
	ProvisionesPorCategoria map[string]string             `json:"provisiones_por_categoria"`
	VariacionPorCategoria   map[string]string             `json:"variacion_por_categoria"`

	Omitidas []OmitidaDTO `json:"omitidas,omitempty"`
}
