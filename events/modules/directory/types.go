// Package directory defines the Kafka events emitted by the user directory.
package directory

import "time"

// EventTypeDirectoryLoaded is published once the store has been populated
const EventTypeDirectoryLoaded = "directory.loaded"

// DirectoryLoadedEvent represents a finished initial load published to Kafka.
type DirectoryLoadedEvent struct {
	EventType     string    `json:"event_type"`
	EventID       string    `json:"event_id"`
	EventTime     time.Time `json:"event_time"`
	SchemaVersion string    `json:"schema_version"`

	// Source names the data source kind, e.g. "http"
	Source string `json:"source"`
	Locale string `json:"locale"`

	Fetched   int   `json:"fetched"`
	Loaded    int   `json:"loaded"`
	Skipped   int   `json:"skipped"`
	Attempts  int   `json:"attempts"`
	ElapsedMs int64 `json:"elapsed_ms"`
}
