package chronometer

import "fmt"

const (
	millisPerSecond = int64(1000)
	millisPerMinute = 60 * millisPerSecond
	millisPerHour   = 60 * millisPerMinute
)

// Display is the formatted elapsed time, capped to one hour.
type Display struct {
	Minutes      string
	Seconds      string
	Centiseconds string
	// Millis is the capped elapsed time the text was computed from.
	Millis int64
}

// String renders the display as MM:SS.CC.
func (display Display) String() string {
	return display.Minutes + ":" + display.Seconds + "." + display.Centiseconds
}

// Format converts elapsed milliseconds into two-digit minutes, seconds and
// centiseconds. The value wraps silently every hour; negative values show as
// zero.
func Format(elapsedMillis int64) Display {
	if elapsedMillis < 0 {
		elapsedMillis = 0
	}
	millis := elapsedMillis % millisPerHour
	return Display{
		Minutes:      fmt.Sprintf("%02d", millis/millisPerMinute),
		Seconds:      fmt.Sprintf("%02d", (millis/millisPerSecond)%60),
		Centiseconds: fmt.Sprintf("%02d", (millis%millisPerSecond)/10),
		Millis:       millis,
	}
}
