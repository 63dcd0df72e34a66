package processor

import "time"

// EventType represents the phases of one processing run
type EventType string

const (
	EventHeaderParsed  EventType = "header_parsed"
	EventFiltersBuilt  EventType = "filters_built"
	EventRowsIngested  EventType = "rows_ingested"
	EventOutputWritten EventType = "output_written"
	EventAborted       EventType = "aborted"
)

// Event represents a lifecycle event in a processing run
type Event struct {
	Type      EventType   // Type of event
	RunID     string      // Identifies the processing call
	Timestamp time.Time   // When the event occurred
	Data      interface{} // Phase-specific data (column count, filters, Stats, error)
}

// Observer receives events at each processing phase
type Observer interface {
	OnEvent(event Event)
}

// Stats counts the data records seen during row ingestion
type Stats struct {
	Rows     int // data records read, blank lines excluded
	Accepted int
	Rejected int
}
