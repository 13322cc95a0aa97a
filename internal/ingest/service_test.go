package ingest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeLedger struct {
	rows   []Record
	failOn map[string]bool
}

func (f *fakeLedger) Upsert(_ context.Context, rec Record) error {
	if f.failOn[rec.RollNumber] {
		return errors.New("store rejected row")
	}
	f.rows = append(f.rows, rec)
	return nil
}

func TestSubmitBatchCounts(t *testing.T) {
	ledger := &fakeLedger{}
	svc := NewService(ledger)

	entries := []Entry{
		{RollNumber: "S101", Status: "present", Department: "CS", Section: "A"},
		{RollNumber: "S102", Status: "absent", Department: "CS", Section: "A"},
		{RollNumber: "", Status: "present", Department: "CS", Section: "A"},
		{RollNumber: "S104", Status: "present", Department: "", Section: "A"},
	}
	res, err := svc.SubmitBatch(context.Background(), "2024-01-10", "user-1", entries)
	assert.NoError(t, err)
	assert.Equal(t, 2, res.SuccessCount)
	assert.Equal(t, 2, res.ErrorCount)
	assert.Equal(t, 4, res.Total)
	assert.Equal(t, res.Total, res.SuccessCount+res.ErrorCount)

	assert.Len(t, ledger.rows, 2)
	for _, rec := range ledger.rows {
		assert.Equal(t, "2024-01-10", rec.Date)
		assert.Equal(t, "user-1", rec.MarkedBy)
	}
}

func TestSubmitBatchRejectsUnknownStatus(t *testing.T) {
	ledger := &fakeLedger{}
	svc := NewService(ledger)

	res, err := svc.SubmitBatch(context.Background(), "2024-01-10", "user-1", []Entry{
		{RollNumber: "S101", Status: "late", Department: "CS", Section: "A"},
		{RollNumber: "S102", Status: "Present", Department: "CS", Section: "A"},
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, res.SuccessCount)
	assert.Equal(t, 1, res.ErrorCount)
	// status is lower-cased before the write
	assert.Equal(t, "present", ledger.rows[0].Status)
}

func TestSubmitBatchStoreFailureDoesNotAbort(t *testing.T) {
	ledger := &fakeLedger{failOn: map[string]bool{"S102": true}}
	svc := NewService(ledger)

	res, err := svc.SubmitBatch(context.Background(), "2024-01-10", "user-1", []Entry{
		{RollNumber: "S101", Status: "present", Department: "CS", Section: "A"},
		{RollNumber: "S102", Status: "present", Department: "CS", Section: "A"},
		{RollNumber: "S103", Status: "present", Department: "CS", Section: "A"},
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, res.SuccessCount)
	assert.Equal(t, 1, res.ErrorCount)
	assert.Equal(t, 3, res.Total)
}

func TestSubmitBatchEmptyInput(t *testing.T) {
	svc := NewService(&fakeLedger{})

	_, err := svc.SubmitBatch(context.Background(), "2024-01-10", "user-1", nil)
	assert.Error(t, err)

	_, err = svc.SubmitBatch(context.Background(), "", "user-1", []Entry{
		{RollNumber: "S101", Status: "present", Department: "CS", Section: "A"},
	})
	assert.Error(t, err)
}

func TestSubmitTextShortLineCounted(t *testing.T) {
	ledger := &fakeLedger{}
	svc := NewService(ledger)

	text := "Header\nS101,x,CS,A,present\nS102,x,CS,A"
	res, err := svc.SubmitText(context.Background(), "2024-01-10", "user-1", text)
	assert.NoError(t, err)
	assert.Equal(t, 1, res.SuccessCount)
	assert.Equal(t, 1, res.ErrorCount)
	assert.Equal(t, 2, res.Total)

	assert.Len(t, ledger.rows, 1)
	assert.Equal(t, Record{
		Date:       "2024-01-10",
		RollNumber: "S101",
		Status:     "present",
		Department: "CS",
		Section:    "A",
		MarkedBy:   "user-1",
	}, ledger.rows[0])
}

func TestSubmitTextTrimsAndLowercases(t *testing.T) {
	ledger := &fakeLedger{}
	svc := NewService(ledger)

	text := "roll,name,dept,section,status\n  S101 , Jo , CS , A , PRESENT "
	res, err := svc.SubmitText(context.Background(), "2024-01-10", "", text)
	assert.NoError(t, err)
	assert.Equal(t, 1, res.SuccessCount)
	assert.Equal(t, "present", ledger.rows[0].Status)
	assert.Equal(t, "S101", ledger.rows[0].RollNumber)
}

func TestSubmitTextHeaderOnly(t *testing.T) {
	svc := NewService(&fakeLedger{})
	_, err := svc.SubmitText(context.Background(), "2024-01-10", "user-1", "Header")
	assert.Error(t, err)
}

func TestSubmitTextMissingInput(t *testing.T) {
	svc := NewService(&fakeLedger{})

	_, err := svc.SubmitText(context.Background(), "", "user-1", "Header\nS101,x,CS,A,present")
	assert.Error(t, err)

	_, err = svc.SubmitText(context.Background(), "2024-01-10", "user-1", "  ")
	assert.Error(t, err)
}
