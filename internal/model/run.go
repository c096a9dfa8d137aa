package model

import "time"

// RunInfo describes a stored run.
type RunInfo struct {
	ID        string
	StartedAt time.Time
	Queries   []string
	Summary   Summary
}
