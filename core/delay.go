package core

// DelayMillisecond busy-waits for approximately ms milliseconds by
// registering a one-shot timer that clears a flag this function polls.
// Intended for short, non-performance-critical delays; it does not yield
// to any scheduler since there is none to yield to.
func DelayMillisecond(ms uint16) {
	ticks := MsToTick(ms)
	done := false
	var h TimerHandle
	createTimer(&h, ticks, 0, delayCallback, &done, 0, 0)
	for !done {
	}
}

func delayCallback(h *TimerHandle, data interface{}) {
	done := data.(*bool)
	*done = true
}
