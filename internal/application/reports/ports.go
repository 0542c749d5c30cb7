package reports

import "time"

// ActivityReportEntry una línea del reporte (texto del log y su fecha).
type ActivityReportEntry struct {
	Text      string
	CreatedAt time.Time
}

// ActivityReportData datos ya resueltos para renderizar el reporte de actividad.
type ActivityReportData struct {
	AgencyName  string
	AgencyLogo  string
	GeneratedAt time.Time
	Entries     []ActivityReportEntry
}

// ActivityPDFGenerator puerto de renderizado del reporte en PDF.
// La implementación vive en infrastructure/pdf.
type ActivityPDFGenerator interface {
	GenerateActivityReport(data ActivityReportData) ([]byte, error)
}
