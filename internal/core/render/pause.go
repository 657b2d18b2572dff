package render

import "sort"

// Pause reasons used by the hosts.
const (
	ReasonUser       = "user"
	ReasonBackground = "background"
	ReasonIdle       = "idle"
)

// PauseGate folds several independent pause reasons (user toggle, window
// in background, user idle) into the arbiter's single pause signal.
type PauseGate struct {
	target  interface{ RenderingPaused(paused bool) }
	reasons map[string]bool
}

// NewPauseGate returns a gate forwarding to target.
func NewPauseGate(target interface{ RenderingPaused(paused bool) }) *PauseGate {
	return &PauseGate{target: target, reasons: make(map[string]bool)}
}

// Set records a reason and forwards the combined state.
func (gate *PauseGate) Set(reason string, paused bool) {
	if paused {
		gate.reasons[reason] = true
	} else {
		delete(gate.reasons, reason)
	}
	gate.Apply()
}

// Forget drops a reason without forwarding.
func (gate *PauseGate) Forget(reason string) {
	delete(gate.reasons, reason)
}

// Apply forwards the combined state again, e.g. after a new surface
// cleared the arbiter's flag.
func (gate *PauseGate) Apply() {
	gate.target.RenderingPaused(gate.Paused())
}

// Paused reports whether any reason is active.
func (gate *PauseGate) Paused() bool {
	return len(gate.reasons) > 0
}

// Reasons lists the active reasons in order.
func (gate *PauseGate) Reasons() []string {
	reasons := make([]string, 0, len(gate.reasons))
	for reason := range gate.reasons {
		reasons = append(reasons, reason)
	}
	sort.Strings(reasons)
	return reasons
}
