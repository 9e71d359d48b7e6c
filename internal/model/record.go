package model

import "time"

// Record is a single log entry as written by logpie outputs.
type Record struct {
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Logger    string    `json:"logger"`
	Message   string    `json:"message"`
	Type      string    `json:"type,omitempty"` // dynamic type of the attached value, if any
	Size      int       `json:"size"`           // UTF-8 byte size of Message
}
