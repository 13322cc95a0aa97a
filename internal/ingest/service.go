// Package ingest is the attendance ingestion path: batches of rows arrive as
// structured JSON, raw delimited text, or a spreadsheet, and are written to
// the ledger one row at a time. A bad row is counted, never fatal.
package ingest

import (
	"context"
	"strings"

	"attendance/internal/apperr"
)

// Statuses accepted by the ledger.
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
)

// ValidStatus reports whether status is one of the two allowed values.
func ValidStatus(status string) bool {
	return status == StatusPresent || status == StatusAbsent
}

// Entry is one structured submission record.
type Entry struct {
	RollNumber string `json:"roll_number"`
	Status     string `json:"status"`
	Department string `json:"department"`
	Section    string `json:"section"`
}

// Record is one validated ledger row ready to write.
type Record struct {
	Date       string
	RollNumber string
	Status     string
	Department string
	Section    string
	MarkedBy   string
}

// Result reports per-batch counts. SuccessCount+ErrorCount always equals Total.
type Result struct {
	SuccessCount int `json:"successCount"`
	ErrorCount   int `json:"errorCount"`
	Total        int `json:"total"`
}

// Ledger is the write surface of the attendance store.
type Ledger interface {
	Upsert(ctx context.Context, rec Record) error
}

// Service converts submissions into ledger rows.
type Service struct {
	ledger Ledger
}

// NewService creates a service backed by a ledger.
func NewService(ledger Ledger) *Service {
	return &Service{ledger: ledger}
}

// SubmitBatch writes a structured batch. A record with any empty field or an
// unknown status is counted as an error and skipped.
func (s *Service) SubmitBatch(ctx context.Context, date, markedBy string, entries []Entry) (Result, error) {
	if date == "" || len(entries) == 0 {
		return Result{}, apperr.New(apperr.Validation, "invalid or empty attendance data")
	}
	res := Result{Total: len(entries)}
	for _, e := range entries {
		status := strings.ToLower(strings.TrimSpace(e.Status))
		if e.RollNumber == "" || e.Status == "" || e.Department == "" || e.Section == "" || !ValidStatus(status) {
			res.ErrorCount++
			rowsTotal.WithLabelValues(sourceJSON, outcomeError).Inc()
			continue
		}
		rec := Record{
			Date:       date,
			RollNumber: e.RollNumber,
			Status:     status,
			Department: e.Department,
			Section:    e.Section,
			MarkedBy:   markedBy,
		}
		if err := s.ledger.Upsert(ctx, rec); err != nil {
			res.ErrorCount++
			rowsTotal.WithLabelValues(sourceJSON, outcomeError).Inc()
			continue
		}
		res.SuccessCount++
		rowsTotal.WithLabelValues(sourceJSON, outcomeOK).Inc()
	}
	return res, nil
}

// SubmitText writes a batch given as raw delimited text. The first line is a
// header and is discarded. Fields are comma-separated and trimmed; positions
// are fixed: [0]=roll number, [2]=department, [3]=section, [4]=status. A line
// with fewer than 5 fields is an error. Field [1] is carried by the format
// but unused.
func (s *Service) SubmitText(ctx context.Context, date, markedBy, text string) (Result, error) {
	if date == "" || strings.TrimSpace(text) == "" {
		return Result{}, apperr.New(apperr.Validation, "missing required fields")
	}
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 2 {
		return Result{}, apperr.New(apperr.Validation, "invalid csv data")
	}

	res := Result{Total: len(lines) - 1}
	for _, line := range lines[1:] {
		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if len(parts) < 5 {
			res.ErrorCount++
			rowsTotal.WithLabelValues(sourceCSV, outcomeError).Inc()
			continue
		}
		rec := Record{
			Date:       date,
			RollNumber: parts[0],
			Status:     strings.ToLower(parts[4]),
			Department: parts[2],
			Section:    parts[3],
			MarkedBy:   markedBy,
		}
		if !ValidStatus(rec.Status) {
			res.ErrorCount++
			rowsTotal.WithLabelValues(sourceCSV, outcomeError).Inc()
			continue
		}
		if err := s.ledger.Upsert(ctx, rec); err != nil {
			res.ErrorCount++
			rowsTotal.WithLabelValues(sourceCSV, outcomeError).Inc()
			continue
		}
		res.SuccessCount++
		rowsTotal.WithLabelValues(sourceCSV, outcomeOK).Inc()
	}
	return res, nil
}
