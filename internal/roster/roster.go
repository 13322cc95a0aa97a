// Package roster holds the canonical student list and the batch import that
// creates a login and a roster row per student.
package roster

import "time"

// Student is one roster entry, keyed by roll number.
type Student struct {
	RollNumber string    `json:"roll_number"`
	Name       string    `json:"name"`
	Department string    `json:"department"`
	Section    string    `json:"section"`
	CreatedAt  time.Time `json:"created_at"`
}

// ImportRecord is one student in a batch import request.
type ImportRecord struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Section    string `json:"section"`
	RollNumber string `json:"rollNumber"`
}

// Result reports per-batch import counts.
type Result struct {
	SuccessCount int `json:"successCount"`
	ErrorCount   int `json:"errorCount"`
	Total        int `json:"total"`
}
