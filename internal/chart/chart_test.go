package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairway-data/swinglab/internal/kinematics"
)

func sampleResult() *kinematics.SequenceResult {
	series := map[kinematics.Segment][]kinematics.SegmentSample{
		kinematics.SegmentPelvis: {
			{TimestampMs: 90, Segment: kinematics.SegmentPelvis, VelocityDegPerSec: 240},
			{TimestampMs: 100, Segment: kinematics.SegmentPelvis, VelocityDegPerSec: 400},
			{TimestampMs: 110, Segment: kinematics.SegmentPelvis, VelocityDegPerSec: 320},
		},
		kinematics.SegmentTorso: {
			{TimestampMs: 165, Segment: kinematics.SegmentTorso, VelocityDegPerSec: 330},
			{TimestampMs: 175, Segment: kinematics.SegmentTorso, VelocityDegPerSec: 550},
		},
		kinematics.SegmentArms: {
			{TimestampMs: 250, Segment: kinematics.SegmentArms, VelocityDegPerSec: 800},
		},
		kinematics.SegmentClub: {
			{TimestampMs: 325, Segment: kinematics.SegmentClub, VelocityDegPerSec: 1600},
		},
	}
	return kinematics.EvaluateSequence(series, kinematics.DefaultConfig())
}

func TestRenderSequenceHTML(t *testing.T) {
	var buf bytes.Buffer
	err := RenderSequenceHTML(&buf, sampleResult(), "Session abc123")
	require.NoError(t, err)

	html := buf.String()
	assert.NotEmpty(t, html)
	assert.Contains(t, html, "Session abc123")
	for _, seg := range kinematics.SegmentOrder {
		assert.Contains(t, html, string(seg))
	}
}

func TestRenderSequenceHTML_NilResult(t *testing.T) {
	var buf bytes.Buffer
	err := RenderSequenceHTML(&buf, nil, "x")
	require.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestRenderSequenceHTML_EmptySeries(t *testing.T) {
	res := kinematics.EvaluateSequence(map[kinematics.Segment][]kinematics.SegmentSample{}, kinematics.DefaultConfig())
	var buf bytes.Buffer
	err := RenderSequenceHTML(&buf, res, "empty")
	require.NoError(t, err)
	assert.True(t, strings.Contains(buf.String(), "empty"))
}

func TestSaveSequencePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sequence.png")
	err := SaveSequencePNG(sampleResult(), "Session abc123", path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSaveSequencePNG_NilResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sequence.png")
	err := SaveSequencePNG(nil, "x", path)
	require.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
