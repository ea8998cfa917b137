// Package replay records and plays back per-frame intents.
package replay

import "github.com/younwookim/junglejr/internal/application/system"

// FormatVersion is written into every recording
const FormatVersion = "2.0"

// FrameInput records the intent for a single frame
type FrameInput struct {
	F int `json:"f"` // Frame number
	system.Intent
}

// ReplayData contains all data needed to replay a round.
// The simulation has no randomness, so the level and the intents are
// enough to reproduce it.
type ReplayData struct {
	Version   string       `json:"version"`
	Level     string       `json:"level"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
