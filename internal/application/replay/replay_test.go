package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/stepanim/internal/application/system"
)

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: "1.0",
		Frames: []FrameInput{
			{F: 0, L: true},
			{F: 1, R: true, U: true},
			{F: 2},
		},
	}

	replayer := NewReplayer(data)

	// Frame 0
	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Left)
	assert.False(t, input.Right)

	// Frame 1
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Right)
	assert.True(t, input.Up)

	// Frame 2
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.InputState{}, input)

	// End
	_, ok = replayer.GetInput()
	assert.False(t, ok)
	assert.Equal(t, 3, replayer.CurrentFrame())
	assert.Equal(t, 3, replayer.TotalFrames())

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	rec := NewRecorder("cave")
	rec.RecordFrame(system.InputState{Left: true})
	rec.RecordFrame(system.InputState{Down: true})
	rec.Stop()
	rec.RecordFrame(system.InputState{Right: true})

	assert.False(t, rec.IsRecording())
	require.Equal(t, 2, rec.FrameCount())

	path := filepath.Join(t.TempDir(), "replay.json")
	require.NoError(t, rec.Save(path))

	loaded, err := LoadReplay(path)
	require.NoError(t, err)

	assert.Equal(t, "cave", loaded.StartArea)
	assert.Equal(t, rec.GetData().Frames, loaded.Frames)
}

func TestRecorder_SaveEmpty(t *testing.T) {
	rec := NewRecorder("outside")

	err := rec.Save(filepath.Join(t.TempDir(), "empty.json"))

	assert.ErrorContains(t, err, "no frames")
}

func TestLoadReplay_Errors(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to open file")

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = LoadReplay(bad)
	assert.ErrorContains(t, err, "failed to decode replay")
}

func TestFrameInput_OmitsFalseKeys(t *testing.T) {
	b, err := json.Marshal(FrameInput{F: 3, R: true})
	require.NoError(t, err)

	assert.JSONEq(t, `{"f":3,"r":true}`, string(b))
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename()

	assert.Regexp(t, `^replay_\d{8}_\d{6}\.json$`, name)
}

func TestCreateTestReplayData(t *testing.T) {
	data := CreateTestReplayData(3, system.InputState{Right: true})

	require.Len(t, data.Frames, 3)
	assert.Equal(t, 2, data.Frames[2].F)
	assert.True(t, data.Frames[1].R)
	_, err := time.Parse(time.RFC3339, data.StartTime)
	assert.NoError(t, err)
}
