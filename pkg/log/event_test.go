package log

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flying-elephant/libwacom/pkg/check"
)

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "RUN", CategoryRun.String())
	assert.Equal(t, "RESULT", CategoryResult.String())
	assert.Equal(t, "UNKNOWN", Category(9).String())
}

func TestRunPhaseString(t *testing.T) {
	assert.Equal(t, "STARTED", RunStarted.String())
	assert.Equal(t, "FINISHED", RunFinished.String())
	assert.Equal(t, "UNKNOWN", RunPhase(9).String())
}

func TestEncodeDecodeResultEvent(t *testing.T) {
	ts := time.Date(2026, 3, 4, 10, 30, 0, 123456789, time.UTC)
	event := Event{
		Timestamp: ts,
		RunID:     "run-1",
		Category:  CategoryResult,
		Device:    "Wacom Intuos Pro M",
		Layout:    "intuos-pro-m.svg",
		Result: &ResultEvent{
			RuleID:        "STRIP-001",
			Status:        check.StatusSkip,
			Message:       "Autogenerated device has errors in SVG: Failed to find required element with id Strip",
			Autogenerated: true,
			Duration:      2 * time.Millisecond,
		},
	}

	data, err := EncodeEvent(event)
	require.NoError(t, err)

	decoded, err := DecodeEvent(data)
	require.NoError(t, err)

	assert.True(t, ts.Equal(decoded.Timestamp))
	assert.Equal(t, event.RunID, decoded.RunID)
	assert.Equal(t, event.Category, decoded.Category)
	assert.Equal(t, event.Device, decoded.Device)
	assert.Equal(t, event.Layout, decoded.Layout)
	assert.Nil(t, decoded.Run)
	require.NotNil(t, decoded.Result)
	assert.Equal(t, *event.Result, *decoded.Result)
}

func TestEncodeDecodeRunEvent(t *testing.T) {
	event := Event{
		Timestamp: time.Now().UTC(),
		RunID:     "run-2",
		Category:  CategoryRun,
		Run: &RunEvent{
			Phase:    RunFinished,
			Root:     "/src/libwacom",
			Targets:  3,
			Rules:    []string{"SVG-001", "RING-001"},
			Passed:   4,
			Failed:   1,
			Skipped:  1,
			Duration: time.Second,
		},
	}

	data, err := EncodeEvent(event)
	require.NoError(t, err)

	decoded, err := DecodeEvent(data)
	require.NoError(t, err)

	require.NotNil(t, decoded.Run)
	assert.Nil(t, decoded.Result)
	assert.Equal(t, *event.Run, *decoded.Run)
}

func TestDecodeEventInvalid(t *testing.T) {
	_, err := DecodeEvent([]byte{0xff, 0x00})
	assert.Error(t, err)
}

func TestEncodeEventUsesIntegerKeys(t *testing.T) {
	data, err := EncodeEvent(Event{RunID: "x", Category: CategoryRun})
	require.NoError(t, err)

	var raw map[any]any
	require.NoError(t, eventDecMode.Unmarshal(data, &raw))
	for k := range raw {
		_, ok := k.(uint64)
		assert.True(t, ok, "key %v is not an integer", k)
	}
}
