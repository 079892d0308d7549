package models

import "time"

// Run is one validation attempt of an uploaded file against a template.
type Run struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	TemplateID string    `json:"template_id"`
	Status     string    `json:"status"`
	Errors     []string  `json:"errors"`
	Timestamp  time.Time `json:"timestamp"`
	FileName   string    `json:"file_name"`
	ObjectKey  string    `json:"object_key"`
}

// RunStats is computed on demand, never stored.
type RunStats struct {
	TotalRuns  int64 `json:"total_runs"`
	PassedRuns int64 `json:"passed_runs"`
	FailedRuns int64 `json:"failed_runs"`
}
