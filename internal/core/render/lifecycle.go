package render

// Lifecycle routes a host's surface and pause signals to the arbiter
// through a pause gate.
type Lifecycle struct {
	arbiter *Arbiter
	gate    *PauseGate
}

// NewLifecycle returns a router for arbiter, gating pause through gate.
func NewLifecycle(arbiter *Arbiter, gate *PauseGate) *Lifecycle {
	return &Lifecycle{arbiter: arbiter, gate: gate}
}

// SurfaceCreated resumes rendering on the new surface. A user pause does
// not survive a new surface; background and idle pauses are re-asserted.
func (lifecycle *Lifecycle) SurfaceCreated(surface Surface) {
	lifecycle.gate.Forget(ReasonUser)
	lifecycle.arbiter.SurfaceCreated(surface)
	if lifecycle.gate.Paused() {
		lifecycle.gate.Apply()
	}
}

func (lifecycle *Lifecycle) SurfaceChanged(width, height int) {
	lifecycle.arbiter.SurfaceChanged(width, height)
}

func (lifecycle *Lifecycle) SurfaceDestroyed() {
	lifecycle.arbiter.SurfaceDestroyed()
}

// Pause sets or clears one pause reason.
func (lifecycle *Lifecycle) Pause(reason string, paused bool) {
	lifecycle.gate.Set(reason, paused)
}

// Paused reports whether any pause reason is active.
func (lifecycle *Lifecycle) Paused() bool {
	return lifecycle.gate.Paused()
}

// UserPaused reports whether the user asked to pause.
func (lifecycle *Lifecycle) UserPaused() bool {
	for _, reason := range lifecycle.gate.Reasons() {
		if reason == ReasonUser {
			return true
		}
	}
	return false
}
