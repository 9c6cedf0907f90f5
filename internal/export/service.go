package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/hasc-tools/ndaa-intake/constants"
	"github.com/hasc-tools/ndaa-intake/internal/repository"
)

// Service produces XLSX bytes for the authorized-requests report.
type Service struct {
	repo   repository.RequestRepository
	logger *slog.Logger
}

func NewService(repo repository.RequestRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// ExportAuthorizedXLSX returns an XLSX workbook (as bytes) listing every
// yes-voted request, grouped by domain.
func (s *Service) ExportAuthorizedXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	recs, err := s.repo.ListAuthorized(ctx)
	if err != nil {
		return nil, fmt.Errorf("query authorized requests: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Authorized Requests"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Organization",
		"Amount",
		"Domain",
		"Tier",
		"Program Element",
		"Services",
		"DRL",
		"District Impact",
		"Summary",
		"Document Path",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.OrganizationName)
		write(2, r.FormattedAmount)
		write(3, string(r.Domain))
		write(4, r.Tier)
		write(5, r.ProgramElement)
		write(6, constants.JoinServices(r.WarfighterServices))
		if r.IsDRL {
			write(7, "Yes")
		} else {
			write(7, "No")
		}
		write(8, r.DistrictImpact)
		write(9, truncate(r.BriefSummary, 140))
		write(10, r.DocumentPath)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 32) // organization
	_ = f.SetColWidth(sheet, "B", "B", 16) // amount
	_ = f.SetColWidth(sheet, "C", "D", 22) // domain, tier
	_ = f.SetColWidth(sheet, "E", "F", 24) // PE, services
	_ = f.SetColWidth(sheet, "H", "H", 28) // district
	_ = f.SetColWidth(sheet, "I", "I", 48) // summary
	_ = f.SetColWidth(sheet, "J", "J", 60) // path

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
