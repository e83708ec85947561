package core

// Callback is invoked when a timer expires. data is the opaque value
// passed at start time.
type Callback func(handle *TimerHandle, data interface{})

// TimerHandle is owned by the caller for its entire active lifetime.
// Its fields are mutated only by the scheduler; the application must not
// write to them directly while the handle is linked into the list
// (IsTimerRunning reports whether that is currently the case).
type TimerHandle struct {
	delta           uint32 // ticks until this timer fires, relative to the previous list entry
	next            *TimerHandle
	timeoutPeriodic uint32 // 0 for one-shot, else the reload value in ticks
	callback        Callback
	callbackData    interface{}
	priority        uint8  // 0 is highest priority
	optionFlags     uint16 // opaque application tag
}

// Priority returns the handle's configured priority (0 is highest).
func (h *TimerHandle) Priority() uint8 {
	return h.priority
}

// OptionFlags returns the handle's opaque application tag.
func (h *TimerHandle) OptionFlags() uint16 {
	return h.optionFlags
}
