package httpapi

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"attendance/internal/apperr"
	"attendance/internal/auth"
	"attendance/internal/ingest"
	"attendance/internal/report"
	"attendance/internal/roster"
)

type submitAttendanceRequest struct {
	Date           string         `json:"date"`
	AttendanceData []ingest.Entry `json:"attendanceData"`
}

// SubmitAttendance ingests a structured batch. The submitting user comes from
// the bearer token.
func (h *Handler) SubmitAttendance(c *gin.Context) {
	var req submitAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, apperr.Wrap(apperr.Validation, "invalid request body", err))
		return
	}
	res, err := h.ingest.SubmitBatch(c.Request.Context(), req.Date, auth.ClaimsFrom(c).Subject, req.AttendanceData)
	if err != nil {
		h.fail(c, err)
		return
	}
	batchResponse(c, "Attendance submitted successfully", res)
}

type uploadCSVRequest struct {
	Date    string `json:"date"`
	CSVData string `json:"csvData"`
}

// UploadAttendanceCSV ingests a batch given as raw comma-delimited text.
func (h *Handler) UploadAttendanceCSV(c *gin.Context) {
	var req uploadCSVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, apperr.Wrap(apperr.Validation, "invalid request body", err))
		return
	}
	res, err := h.ingest.SubmitText(c.Request.Context(), req.Date, auth.ClaimsFrom(c).Subject, req.CSVData)
	if err != nil {
		h.fail(c, err)
		return
	}
	batchResponse(c, "Attendance uploaded successfully", res)
}

// UploadAttendanceFile ingests a batch from an uploaded spreadsheet. The
// upload is staged in a temp file that is removed on every exit path.
func (h *Handler) UploadAttendanceFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		h.fail(c, apperr.New(apperr.Validation, "no file uploaded"))
		return
	}
	if file.Size > h.cfg.MaxUploadBytes {
		h.fail(c, apperr.New(apperr.Validation, "file too large"))
		return
	}

	tmp, err := os.CreateTemp("", "attendance-upload-*.xlsx")
	if err != nil {
		h.fail(c, apperr.Wrap(apperr.Store, "staging upload failed", err))
		return
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		h.fail(c, apperr.Wrap(apperr.Store, "staging upload failed", err))
		return
	}
	res, err := h.ingest.SubmitWorkbook(c.Request.Context(), c.PostForm("date"), auth.ClaimsFrom(c).Subject, tmpPath)
	if err != nil {
		h.fail(c, err)
		return
	}
	batchResponse(c, "Attendance uploaded successfully", res)
}

type addStudentsRequest struct {
	Students []roster.ImportRecord `json:"students"`
}

// AddStudents imports a roster batch, creating a login and roster row per
// student.
func (h *Handler) AddStudents(c *gin.Context) {
	var req addStudentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, apperr.Wrap(apperr.Validation, "invalid request body", err))
		return
	}
	res, err := h.roster.Import(c.Request.Context(), req.Students)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Students added successfully",
		"successCount": res.SuccessCount,
		"errorCount":   res.ErrorCount,
		"total":        res.Total,
	})
}

// AttendanceHistory lists ledger rows matching the query filters.
func (h *Handler) AttendanceHistory(c *gin.Context) {
	records, err := h.report.History(c.Request.Context(), report.HistoryFilter{
		Department: c.Query("department"),
		Section:    c.Query("section"),
		StartDate:  c.Query("startDate"),
		EndDate:    c.Query("endDate"),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	if records == nil {
		records = []report.HistoryRecord{}
	}
	c.JSON(http.StatusOK, records)
}

func batchResponse(c *gin.Context, message string, res ingest.Result) {
	c.JSON(http.StatusOK, gin.H{
		"message":      message,
		"successCount": res.SuccessCount,
		"errorCount":   res.ErrorCount,
		"total":        res.Total,
	})
}
