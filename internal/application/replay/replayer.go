package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/younwookim/village/internal/domain/input"
)

// Replayer feeds recorded actions back one frame per tick
type Replayer struct {
	data  ReplayData
	frame int
}

func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// Read decodes a recording and rejects other format versions
func Read(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("unsupported replay version %q", data.Version)
	}
	return &data, nil
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open replay: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Read(file)
}

// GetInput returns the input for the current frame and advances. It
// reports false once every frame has been played.
func (r *Replayer) GetInput() (input.State, bool) {
	if r.frame >= len(r.data.Frames) {
		return input.State{}, false
	}

	held := r.data.Frames[r.frame].A
	r.frame++
	return decodeState(held), true
}

// Progress reports how many frames have been played out of the total
func (r *Replayer) Progress() (played, total int) {
	return r.frame, len(r.data.Frames)
}

// Seed returns the seed the session was recorded with
func (r *Replayer) Seed() int64 { return r.data.Seed }

// Scene returns the scene the session started in
func (r *Replayer) Scene() string { return r.data.Scene }

// Rewind starts playback over from the first frame
func (r *Replayer) Rewind() { r.frame = 0 }
