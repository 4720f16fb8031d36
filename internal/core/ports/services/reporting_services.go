package services

import (
	"context"

	"github.com/coopware/thrift_association_app/internal/dto"
)

// ReportingSvc aggregates the log and entity collections into summaries.
type ReportingSvc interface {
	// MonthlyReport summarizes the calendar month given as "YYYY-MM".
	// Requires GENERATE_REPORTS.
	MonthlyReport(ctx context.Context, yearMonth string) (*dto.MonthlyReport, error)

	// AssociationSummary aggregates the whole association.
	// Requires GENERATE_REPORTS.
	AssociationSummary(ctx context.Context) (*dto.AssociationSummary, error)
}
