// Package model contains domain models/data structures.
// Pure data shared across layers (HTTP, service, cache); no business logic here.
package model

import "time"

// Tool describes one entry in the tool navigation.
type Tool struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	// Implemented marks whether the tool has working endpoints.
	Implemented bool `json:"implemented"`
}

// Snippet is a shared piece of tool input/output, stored with a TTL.
type Snippet struct {
	ID        string    `json:"id"`
	Tool      string    `json:"tool"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryEntry records a single tool invocation.
type HistoryEntry struct {
	Tool    string    `json:"tool"`
	Action  string    `json:"action"`
	Success bool      `json:"success"`
	At      time.Time `json:"at"`
}

// UsageStat aggregates invocation counts per tool.
type UsageStat struct {
	Tool  string `json:"tool"`
	Count int64  `json:"count"`
}
