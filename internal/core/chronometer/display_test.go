package chronometer

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		millis int64
		want   string
	}{
		{millis: 0, want: "00:00.00"},
		{millis: 9, want: "00:00.00"},
		{millis: 10, want: "00:00.01"},
		{millis: 225_890, want: "03:45.89"},
		{millis: 3_599_999, want: "59:59.99"},
		{millis: 3_600_000, want: "00:00.00"},
		{millis: 3_661_230, want: "01:01.23"},
		{millis: -500, want: "00:00.00"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.millis), func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.millis).String())
		})
	}
}

func TestFormatRecomputesLosslessly(t *testing.T) {
	for millis := int64(0); millis < millisPerHour; millis += 997 {
		display := Format(millis)
		minutes, _ := strconv.ParseInt(display.Minutes, 10, 64)
		seconds, _ := strconv.ParseInt(display.Seconds, 10, 64)
		centis, _ := strconv.ParseInt(display.Centiseconds, 10, 64)

		rebuilt := minutes*millisPerMinute + seconds*millisPerSecond + centis*10
		if !assert.Equal(t, millis-millis%10, rebuilt, "millis %d", millis) {
			return
		}
		assert.Equal(t, millis, display.Millis)
	}
}
