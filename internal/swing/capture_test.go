package swing

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeCapture(t *testing.T, name string, v interface{}) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal capture: %v", err)
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write capture: %v", err)
	}
	return path
}

func TestLoadCapture_RoundTrip(t *testing.T) {
	in := &SwingInput{
		SessionID:  "cap-1",
		UserID:     "user-9",
		Club:       "7 iron",
		Handedness: RightHanded,
		Frames: []Frame{
			{JointLeftHip: {X: 0.2, Y: 0.9, Z: 0, Confidence: 0.9}},
			{JointLeftHip: {X: 0.21, Y: 0.9, Z: 0.01, Confidence: 0.85}},
		},
		Phases: []Phase{{Name: P1, StartFrame: 0, EndFrame: 1}},
		FPS:    120,
	}

	got, err := LoadCapture(writeCapture(t, "swing.json", in))
	if err != nil {
		t.Fatalf("LoadCapture: %v", err)
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("capture round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadCapture_WrongExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swing.csv")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCapture(path); err == nil {
		t.Error("LoadCapture accepted a non-json extension")
	}
}

func TestLoadCapture_MissingFile(t *testing.T) {
	if _, err := LoadCapture(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("LoadCapture succeeded on a missing file")
	}
}

func TestLoadCapture_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swing.json")
	if err := os.WriteFile(path, []byte(`{"frames": [`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCapture(path); err == nil {
		t.Error("LoadCapture accepted malformed JSON")
	}
}

func TestLoadCapture_InvalidSwing(t *testing.T) {
	// Parses fine but fails validation: no frames.
	in := &SwingInput{SessionID: "cap-2", FPS: 120}
	if _, err := LoadCapture(writeCapture(t, "swing.json", in)); err == nil {
		t.Error("LoadCapture accepted a capture with no frames")
	}
}
