package render

import "time"

// TicksPerSecond converts a frame interval into the update rate of a game loop, at least 1
func TicksPerSecond(frameRate time.Duration) int {
	if frameRate <= 0 {
		return 1
	}
	return max(1, int(time.Second/frameRate))
}
