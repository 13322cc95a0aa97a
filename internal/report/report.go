// Package report serves read-only aggregations over the attendance ledger.
package report

import (
	"fmt"
	"time"
)

// DeptCount is a per-department tally for one date or month.
type DeptCount struct {
	Department string
	Total      int
	Present    int
	Absent     int
}

// DeptStat is the client shape for daily stats.
type DeptStat struct {
	Department string `json:"department"`
	Total      int    `json:"total"`
	Present    int    `json:"present"`
	Absent     int    `json:"absent"`
	Percentage string `json:"percentage"`
}

// MonthlyDeptStat is the client shape for monthly stats.
type MonthlyDeptStat struct {
	Department string `json:"department"`
	Total      int    `json:"total"`
	Present    int    `json:"present"`
	Percentage string `json:"percentage"`
}

// DailyStats is the daily-stats response.
type DailyStats struct {
	Date  string     `json:"date"`
	Stats []DeptStat `json:"stats"`
}

// MonthlyStats is the monthly-stats response.
type MonthlyStats struct {
	Year  int               `json:"year"`
	Month int               `json:"month"`
	Stats []MonthlyDeptStat `json:"stats"`
}

// HistoryRecord is one ledger row in the faculty history view.
type HistoryRecord struct {
	Date       string `json:"date"`
	RollNumber string `json:"roll_number"`
	Status     string `json:"status"`
	Department string `json:"department"`
	Section    string `json:"section"`
}

// HistoryFilter narrows the faculty history query. Empty fields are skipped.
type HistoryFilter struct {
	Department string
	Section    string
	StartDate  string
	EndDate    string
}

// StudentRecord is one ledger row in a student's own history.
type StudentRecord struct {
	Date       string    `json:"date"`
	Status     string    `json:"status"`
	Department string    `json:"department"`
	Section    string    `json:"section"`
	CreatedAt  time.Time `json:"created_at"`
}

// StudentHistory is the per-student history response.
type StudentHistory struct {
	RollNumber string          `json:"rollNumber"`
	Present    int             `json:"present"`
	Absent     int             `json:"absent"`
	Total      int             `json:"total"`
	Percentage string          `json:"percentage"`
	Records    []StudentRecord `json:"records"`
}

// StudentMonthly is the per-student monthly average response.
type StudentMonthly struct {
	RollNumber string `json:"rollNumber"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	Present    int    `json:"present"`
	Total      int    `json:"total"`
	Percentage string `json:"percentage"`
}

// LogEntry is one distinct marking event in the attendance log.
type LogEntry struct {
	MarkedBy   string `json:"marked_by"`
	Department string `json:"department"`
	Section    string `json:"section"`
	Date       string `json:"date"`
	MarkedAt   string `json:"marked_at"`
}

// SectionRecord is one row in a section snapshot, including who marked it.
type SectionRecord struct {
	RollNumber string    `json:"roll_number"`
	Status     string    `json:"status"`
	MarkedBy   *string   `json:"marked_by"`
	MarkedAt   time.Time `json:"marked_at"`
}

// Percentage formats present/total as a two-decimal percent string. A zero
// total yields "0.00" rather than an error.
func Percentage(present, total int) string {
	if total == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(present)/float64(total)*100)
}
