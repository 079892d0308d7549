// Package models holds the API payloads as seen by the CLI.
package models

import "time"

type User struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name"`
	Disabled bool    `json:"disabled"`
}

type Template struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Columns     []string `json:"columns"`
}

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

type RunStats struct {
	TotalRuns  int64 `json:"total_runs"`
	PassedRuns int64 `json:"passed_runs"`
	FailedRuns int64 `json:"failed_runs"`
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type Health struct {
	Status   string `json:"status"`
	DBStatus string `json:"db_status"`
	Details  string `json:"details,omitempty"`
}
