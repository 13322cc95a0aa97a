package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StudentAttendance returns one student's full history plus aggregate counts.
func (h *Handler) StudentAttendance(c *gin.Context) {
	history, err := h.report.StudentHistory(c.Request.Context(), c.Param("rollNumber"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// StudentMonthlyAverage returns one student's attendance average for a month.
func (h *Handler) StudentMonthlyAverage(c *gin.Context) {
	year, month, err := yearMonth(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	avg, err := h.report.StudentMonthly(c.Request.Context(), c.Param("rollNumber"), year, month)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, avg)
}

// StudentInfo returns one roster entry, 404 when the roll number is unknown.
func (h *Handler) StudentInfo(c *gin.Context) {
	st, err := h.roster.Info(c.Request.Context(), c.Param("rollNumber"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}
