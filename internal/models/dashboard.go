package models

// DashboardStats aggregates record counts for the landing page.
type DashboardStats struct {
	TotalClientes            int `json:"totalClientes"`
	TotalDocumentos          int `json:"totalDocumentos"`
	TotalDocumentosJuridicos int `json:"totalDocumentosJuridicos"`
}
