package report

import (
	"context"

	"attendance/internal/apperr"
)

// Store is the read surface of the ledger the service aggregates over.
type Store interface {
	DailyCounts(ctx context.Context, date string) ([]DeptCount, error)
	MonthlyCounts(ctx context.Context, year, month int) ([]DeptCount, error)
	History(ctx context.Context, f HistoryFilter) ([]HistoryRecord, error)
	StudentRecords(ctx context.Context, rollNumber string) ([]StudentRecord, error)
	StudentMonthlyCounts(ctx context.Context, rollNumber string, year, month int) (present, total int, err error)
	Log(ctx context.Context) ([]LogEntry, error)
	Section(ctx context.Context, department, section, date string) ([]SectionRecord, error)
}

// Service formats ledger aggregates for the API.
type Service struct {
	store Store
}

// NewService creates a service backed by a ledger store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Daily returns per-department counts and percentage for one date.
func (s *Service) Daily(ctx context.Context, date string) (DailyStats, error) {
	counts, err := s.store.DailyCounts(ctx, date)
	if err != nil {
		return DailyStats{}, err
	}
	stats := make([]DeptStat, 0, len(counts))
	for _, c := range counts {
		stats = append(stats, DeptStat{
			Department: c.Department,
			Total:      c.Total,
			Present:    c.Present,
			Absent:     c.Absent,
			Percentage: Percentage(c.Present, c.Total),
		})
	}
	return DailyStats{Date: date, Stats: stats}, nil
}

// Monthly returns per-department counts and percentage for one month.
func (s *Service) Monthly(ctx context.Context, year, month int) (MonthlyStats, error) {
	if month < 1 || month > 12 {
		return MonthlyStats{}, apperr.New(apperr.Validation, "month out of range")
	}
	counts, err := s.store.MonthlyCounts(ctx, year, month)
	if err != nil {
		return MonthlyStats{}, err
	}
	stats := make([]MonthlyDeptStat, 0, len(counts))
	for _, c := range counts {
		stats = append(stats, MonthlyDeptStat{
			Department: c.Department,
			Total:      c.Total,
			Present:    c.Present,
			Percentage: Percentage(c.Present, c.Total),
		})
	}
	return MonthlyStats{Year: year, Month: month, Stats: stats}, nil
}

// History lists ledger rows matching the filter.
func (s *Service) History(ctx context.Context, f HistoryFilter) ([]HistoryRecord, error) {
	return s.store.History(ctx, f)
}

// StudentHistory returns one student's records plus aggregate counts.
func (s *Service) StudentHistory(ctx context.Context, rollNumber string) (StudentHistory, error) {
	if rollNumber == "" {
		return StudentHistory{}, apperr.New(apperr.Validation, "roll number required")
	}
	records, err := s.store.StudentRecords(ctx, rollNumber)
	if err != nil {
		return StudentHistory{}, err
	}
	h := StudentHistory{RollNumber: rollNumber, Records: records}
	for _, rec := range records {
		if rec.Status == "present" {
			h.Present++
		} else if rec.Status == "absent" {
			h.Absent++
		}
	}
	h.Total = h.Present + h.Absent
	h.Percentage = Percentage(h.Present, h.Total)
	if h.Records == nil {
		h.Records = []StudentRecord{}
	}
	return h, nil
}

// StudentMonthly returns one student's attendance average for a month.
func (s *Service) StudentMonthly(ctx context.Context, rollNumber string, year, month int) (StudentMonthly, error) {
	if rollNumber == "" {
		return StudentMonthly{}, apperr.New(apperr.Validation, "roll number required")
	}
	if month < 1 || month > 12 {
		return StudentMonthly{}, apperr.New(apperr.Validation, "month out of range")
	}
	present, total, err := s.store.StudentMonthlyCounts(ctx, rollNumber, year, month)
	if err != nil {
		return StudentMonthly{}, err
	}
	return StudentMonthly{
		RollNumber: rollNumber,
		Year:       year,
		Month:      month,
		Present:    present,
		Total:      total,
		Percentage: Percentage(present, total),
	}, nil
}

// Log returns the recent distinct marking events.
func (s *Service) Log(ctx context.Context) ([]LogEntry, error) {
	return s.store.Log(ctx)
}

// Section returns the snapshot for a (department, section, date) triple. All
// three parts are required.
func (s *Service) Section(ctx context.Context, department, section, date string) ([]SectionRecord, error) {
	if department == "" || section == "" || date == "" {
		return nil, apperr.New(apperr.Validation, "department, section, and date are required")
	}
	return s.store.Section(ctx, department, section, date)
}
