package sound

import "sort"

// NullMixer keeps track of voices without producing sound
type NullMixer struct {
	voices  map[int]*nullVoice
	nextID  int
	started int
}

// NewNullMixer creates a silent mixer
func NewNullMixer() *NullMixer {
	return &NullMixer{voices: make(map[int]*nullVoice)}
}

// Play registers a new voice for clip
func (m *NullMixer) Play(clip string, loop bool, volume float64) (Voice, error) {
	m.nextID++
	m.started++
	v := &nullVoice{mixer: m, id: m.nextID, clip: clip, loop: loop, playing: true}
	m.voices[v.id] = v
	return v, nil
}

// Active returns the number of voices that have not been closed
func (m *NullMixer) Active() int {
	return len(m.voices)
}

// Started returns how many voices were ever started
func (m *NullMixer) Started() int {
	return m.started
}

// ActiveClips returns the clips of open voices, sorted
func (m *NullMixer) ActiveClips() []string {
	clips := make([]string, 0, len(m.voices))
	for _, v := range m.voices {
		clips = append(clips, v.clip)
	}
	sort.Strings(clips)
	return clips
}

type nullVoice struct {
	mixer   *NullMixer
	id      int
	clip    string
	loop    bool
	playing bool
}

func (v *nullVoice) Pause()          { v.playing = false }
func (v *nullVoice) Resume()         { v.playing = true }
func (v *nullVoice) IsPlaying() bool { return v.playing }

func (v *nullVoice) Close() error {
	v.playing = false
	delete(v.mixer.voices, v.id)
	return nil
}
