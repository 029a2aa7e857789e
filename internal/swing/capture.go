package swing

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// MaxCaptureFileBytes bounds capture files to guard against loading a
// mis-pointed file. A 700-frame capture with full joint coverage stays
// well under this.
const MaxCaptureFileBytes = 64 << 20

// LoadCapture reads a SwingInput from a JSON capture file and validates
// it. Loading happens strictly before any analysis; the pipeline itself
// never touches the filesystem.
func LoadCapture(path string) (*SwingInput, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("capture file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("stat capture file: %w", err)
	}
	if info.Size() > MaxCaptureFileBytes {
		return nil, fmt.Errorf("capture file %s exceeds %d bytes", cleanPath, int64(MaxCaptureFileBytes))
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("read capture file: %w", err)
	}

	var s SwingInput
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse capture file %s: %w", cleanPath, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid capture %s: %w", cleanPath, err)
	}
	return &s, nil
}
