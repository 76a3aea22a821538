package dto

// DashboardSummaryDTO resumen de la pantalla principal del almacén.
type DashboardSummaryDTO struct {
	CriticalCount    int               `json:"critical_count"`
	CriticalProducts []ProductResponse `json:"critical_products"`
	RecentActivity   []LogResponse     `json:"recent_activity"`
}
