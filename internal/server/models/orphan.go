package models

import "github.com/dmitrijs2005/ttioportal/internal/models"

// OrphanRecord is a stored orphan report. ReportKey names the exported
// object in the report bucket, if the export succeeded.
type OrphanRecord struct {
	ID int64
	models.Orphan
	ReportKey string
}
