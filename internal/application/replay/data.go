// Package replay records the logical input of a session and plays it back.
// Together with the seed this reproduces a session frame for frame.
package replay

import (
	"github.com/younwookim/village/internal/domain/input"
)

// Version is written into every replay file
const Version = "1.0"

// FrameInput records the actions held during a single frame
type FrameInput struct {
	F int      `json:"f"`           // Frame number
	A []string `json:"a,omitempty"` // Action names
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Scene     string       `json:"scene"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

var actionsByName = func() map[string]input.Action {
	m := make(map[string]input.Action)
	for _, a := range input.Actions() {
		m[a.String()] = a
	}
	return m
}()

// encodeState lists the held actions in declaration order
func encodeState(s input.Source) []string {
	var names []string
	for _, a := range input.Actions() {
		if s.Pressing(a) {
			names = append(names, a.String())
		}
	}
	return names
}

// decodeState ignores names it does not know
func decodeState(names []string) input.State {
	s := make(input.State, len(names))
	for _, n := range names {
		if a, ok := actionsByName[n]; ok {
			s[a] = true
		}
	}
	return s
}
