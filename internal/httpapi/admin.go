package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"attendance/internal/report"
	"attendance/internal/roster"
)

// PendingFaculty lists faculty accounts awaiting approval, newest first.
func (h *Handler) PendingFaculty(c *gin.Context) {
	views, err := h.auth.PendingFaculty(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// ApproveFaculty flips the approval flag for one faculty account.
func (h *Handler) ApproveFaculty(c *gin.Context) {
	if err := h.auth.ApproveFaculty(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Faculty approved successfully"})
}

// DeleteFaculty removes one faculty account.
func (h *Handler) DeleteFaculty(c *gin.Context) {
	if err := h.auth.DeleteFaculty(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Faculty deleted successfully"})
}

// DailyStats aggregates the ledger by department for one date (default today).
func (h *Handler) DailyStats(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = today()
	}
	stats, err := h.report.Daily(c.Request.Context(), date)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// MonthlyStats aggregates the ledger by department for one calendar month.
func (h *Handler) MonthlyStats(c *gin.Context) {
	year, month, err := yearMonth(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	stats, err := h.report.Monthly(c.Request.Context(), year, month)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListStudents returns roster entries, filterable by department and section.
func (h *Handler) ListStudents(c *gin.Context) {
	students, err := h.roster.List(c.Request.Context(), c.Query("department"), c.Query("section"))
	if err != nil {
		h.fail(c, err)
		return
	}
	if students == nil {
		students = []roster.Student{}
	}
	c.JSON(http.StatusOK, students)
}

// AttendanceLog returns the recent distinct marking events.
func (h *Handler) AttendanceLog(c *gin.Context) {
	entries, err := h.report.Log(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	if entries == nil {
		entries = []report.LogEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

// SectionAttendance returns all rows for a (department, section, date) triple.
func (h *Handler) SectionAttendance(c *gin.Context) {
	records, err := h.report.Section(c.Request.Context(), c.Query("department"), c.Query("section"), c.Query("date"))
	if err != nil {
		h.fail(c, err)
		return
	}
	if records == nil {
		records = []report.SectionRecord{}
	}
	c.JSON(http.StatusOK, records)
}
