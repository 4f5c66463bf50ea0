package sound

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// DefaultSampleRate is used when the config does not set one
const DefaultSampleRate = 44100

// Mixer plays clips through ebiten's audio context
type Mixer struct {
	ctx   *audio.Context
	clips map[string][]byte // decoded 16-bit stereo PCM
}

// NewMixer creates a mixer on the shared audio context.
// ebiten allows one context per process, so an existing one is reused.
func NewMixer(sampleRate int) *Mixer {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	return &Mixer{
		ctx:   ctx,
		clips: make(map[string][]byte),
	}
}

// SampleRate returns the sample rate of the underlying context
func (m *Mixer) SampleRate() int {
	return m.ctx.SampleRate()
}

// Load decodes a clip from fsys and registers it under its path
func (m *Mixer) Load(fsys fs.FS, name string) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read clip %q: %w", name, err)
	}
	pcm, err := Decode(m.ctx.SampleRate(), name, data)
	if err != nil {
		return err
	}
	m.clips[name] = pcm
	return nil
}

// LoadAll loads every named clip, stopping at the first failure
func (m *Mixer) LoadAll(fsys fs.FS, names ...string) error {
	for _, name := range names {
		if _, ok := m.clips[name]; ok {
			continue
		}
		if err := m.Load(fsys, name); err != nil {
			return err
		}
	}
	return nil
}

// Has reports whether a clip is loaded
func (m *Mixer) Has(clip string) bool {
	_, ok := m.clips[clip]
	return ok
}

// Play starts a clip. Looping clips restart seamlessly until closed.
func (m *Mixer) Play(clip string, loop bool, volume float64) (Voice, error) {
	pcm, ok := m.clips[clip]
	if !ok {
		return nil, fmt.Errorf("play %q: %w", clip, ErrUnknownClip)
	}

	var player *audio.Player
	if loop {
		stream := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
		p, err := m.ctx.NewPlayer(stream)
		if err != nil {
			return nil, fmt.Errorf("play %q: %w", clip, err)
		}
		player = p
	} else {
		player = m.ctx.NewPlayerFromBytes(pcm)
	}

	player.SetVolume(volume)
	player.Play()
	return &playerVoice{player: player}, nil
}

// Decode converts an encoded clip to 16-bit stereo PCM at sampleRate.
// The format is chosen by extension; anything else is taken as raw PCM.
func Decode(sampleRate int, name string, data []byte) ([]byte, error) {
	var (
		stream io.Reader
		err    error
	)
	switch strings.ToLower(path.Ext(name)) {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	default:
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", name, err)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", name, err)
	}
	return pcm, nil
}

type playerVoice struct {
	player *audio.Player
}

func (v *playerVoice) Pause()          { v.player.Pause() }
func (v *playerVoice) Resume()         { v.player.Play() }
func (v *playerVoice) IsPlaying() bool { return v.player.IsPlaying() }

func (v *playerVoice) Close() error {
	v.player.Pause()
	return v.player.Close()
}
