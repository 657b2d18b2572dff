package audio

import (
	"io"
	"log"
	"sync"
)

// Cue identifies a sound effect.
type Cue string

const (
	// CueCountdown plays once per whole second of the countdown.
	CueCountdown Cue = "countdown_bip"
	// CueFinish plays when the countdown reaches zero.
	CueFinish Cue = "start"
)

// Player plays cues. Implementations are best effort and never fail the
// caller.
type Player interface {
	Play(cue Cue)
}

// Nop discards every cue.
type Nop struct{}

func (Nop) Play(Cue) {}

// Bell rings the terminal bell on the writer. The finish cue rings twice so
// the two cues stay distinguishable.
type Bell struct {
	mu     sync.Mutex
	writer io.Writer
}

// NewBell returns a player writing BEL characters to writer.
func NewBell(writer io.Writer) *Bell {
	return &Bell{writer: writer}
}

func (bell *Bell) Play(cue Cue) {
	payload := []byte{'\a'}
	if cue == CueFinish {
		payload = []byte{'\a', '\a'}
	}

	bell.mu.Lock()
	defer bell.mu.Unlock()
	if _, err := bell.writer.Write(payload); err != nil {
		log.Printf("play cue %s: %v", cue, err)
	}
}

// Switch forwards cues to a player while enabled.
type Switch struct {
	mu      sync.Mutex
	player  Player
	enabled bool
}

// NewSwitch wraps player. Cues are forwarded when enabled is true.
func NewSwitch(player Player, enabled bool) *Switch {
	return &Switch{player: player, enabled: enabled}
}

// SetEnabled toggles forwarding.
func (sw *Switch) SetEnabled(enabled bool) {
	sw.mu.Lock()
	sw.enabled = enabled
	sw.mu.Unlock()
}

func (sw *Switch) Play(cue Cue) {
	sw.mu.Lock()
	enabled := sw.enabled
	sw.mu.Unlock()
	if enabled && sw.player != nil {
		sw.player.Play(cue)
	}
}
