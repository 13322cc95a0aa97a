package ingest

import (
	"context"
	"strings"

	"github.com/xuri/excelize/v2"

	"attendance/internal/apperr"
)

// SubmitWorkbook writes a batch read from an xlsx file on disk. Only the
// first sheet is read; the first row is the header. Column names match
// case-insensitively and tolerate space/underscore variants (RollNumber,
// roll_number, "roll number"). Status defaults to present when the column or
// cell is absent; a row without roll number, department, or section is an
// error. The caller owns the file and its cleanup.
func (s *Service) SubmitWorkbook(ctx context.Context, date, markedBy, path string) (Result, error) {
	if date == "" {
		return Result{}, apperr.New(apperr.Validation, "date required")
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Result{}, apperr.Wrap(apperr.Validation, "unreadable spreadsheet", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Result{}, apperr.New(apperr.Validation, "empty file")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Result{}, apperr.Wrap(apperr.Validation, "unreadable spreadsheet", err)
	}
	if len(rows) < 2 {
		return Result{}, apperr.New(apperr.Validation, "empty file")
	}

	cols := mapColumns(rows[0])
	res := Result{Total: len(rows) - 1}
	for _, row := range rows[1:] {
		rec := Record{
			Date:       date,
			RollNumber: cell(row, cols.roll),
			Status:     strings.ToLower(cell(row, cols.status)),
			Department: cell(row, cols.department),
			Section:    cell(row, cols.section),
			MarkedBy:   markedBy,
		}
		if rec.Status == "" {
			rec.Status = StatusPresent
		}
		if rec.RollNumber == "" || rec.Department == "" || rec.Section == "" || !ValidStatus(rec.Status) {
			res.ErrorCount++
			rowsTotal.WithLabelValues(sourceXLSX, outcomeError).Inc()
			continue
		}
		if err := s.ledger.Upsert(ctx, rec); err != nil {
			res.ErrorCount++
			rowsTotal.WithLabelValues(sourceXLSX, outcomeError).Inc()
			continue
		}
		res.SuccessCount++
		rowsTotal.WithLabelValues(sourceXLSX, outcomeOK).Inc()
	}
	return res, nil
}

// columns holds header positions; -1 means the column is absent.
type columns struct {
	roll       int
	status     int
	department int
	section    int
}

func mapColumns(header []string) columns {
	cols := columns{roll: -1, status: -1, department: -1, section: -1}
	for i, name := range header {
		switch normalizeHeader(name) {
		case "rollnumber":
			cols.roll = i
		case "status":
			cols.status = i
		case "department":
			cols.department = i
		case "section":
			cols.section = i
		}
	}
	return cols
}

// normalizeHeader lower-cases a header cell and strips spaces and underscores
// so RollNumber, roll_number and "roll number" all collapse to one key.
func normalizeHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "")
	return strings.ReplaceAll(name, "_", "")
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
