//go:build !windows

package card

// applyNativeOpacity is a no-op where the driver offers no per-window alpha;
// the background rectangle carries the opacity instead.
func (card *Window) applyNativeOpacity(uint8) {}
