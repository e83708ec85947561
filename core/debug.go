package core

// DebugWriter is a function type for writing debug messages.
type DebugWriter func(string)

// TimingEvent captures a timing-critical scheduler event for post-mortem
// analysis.
type TimingEvent struct {
	EventType uint8  // Event type code
	Priority  uint8  // Priority of the timer handle involved, if any
	Clock     uint32 // Tick count at event
	Value1    uint32 // Context-dependent value (e.g. delta, timeout)
	Value2    uint32 // Context-dependent value (e.g. timeout_periodic)
}

// Event type codes
const (
	EvtTimerInsert      = 1 // timer spliced into the delta list
	EvtTimerRemove      = 2 // timer unlinked from the delta list
	EvtTimerFire        = 3 // timer's callback was invoked
	EvtTimerPast        = 4 // timer expired in the past (delta clamped to 0)
	EvtOverflow         = 5 // hardware counter wrapped
	EvtCompareReprogram = 6 // compare register reprogrammed for new head
	EvtWallClockSet     = 7 // wall clock second_count rebased by set_time
)

const (
	TimingRingSize = 32 // Keep last 32 events for post-mortem
)

var (
	// debugPrintln is the global debug print function (set by platform code).
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether debug output is active.
	debugEnabled bool = false

	// Timing capture ring buffer (non-blocking, for post-mortem).
	timingRing     [TimingRingSize]TimingEvent
	timingRingHead uint8
	timingEnabled  bool   = true // Always capture timing events
	dispatchCount  uint32        // Total EvtTimerFire events since start or the last ClearTimingRing

	// Async debug output channel.
	debugChan chan string
)

// SetDebugWriter sets the platform-specific debug output function.
// This allows platforms to redirect debug output to UART, USB, stdout, etc.
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output.
// Useful for benchmarks where debug output would affect timing.
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled.
func IsDebugEnabled() bool {
	return debugEnabled
}

// InitAsyncDebug starts the async debug output goroutine.
// Call this after SetDebugWriter, from the foreground, never from the ISR.
func InitAsyncDebug() {
	debugChan = make(chan string, 16)
	go debugOutputWorker()
}

func debugOutputWorker() {
	for msg := range debugChan {
		if debugPrintln != nil {
			debugPrintln(msg)
		}
	}
}

// DebugPrintln writes a debug message using the platform-specific writer.
// Blocks if debug is enabled (use DebugAsync for non-blocking).
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// DebugAsync queues a debug message for async output (non-blocking).
// Returns immediately even if the channel is full (drops the message).
func DebugAsync(msg string) {
	if debugChan != nil {
		select {
		case debugChan <- msg:
		default:
			// Channel full, drop message (non-blocking)
		}
	}
}

// RecordTiming captures a timing event in the ring buffer.
// Non-blocking; safe to call from interrupt context.
func RecordTiming(eventType, priority uint8, clock, value1, value2 uint32) {
	if !timingEnabled {
		return
	}
	idx := timingRingHead
	timingRing[idx] = TimingEvent{
		EventType: eventType,
		Priority:  priority,
		Clock:     clock,
		Value1:    value1,
		Value2:    value2,
	}
	timingRingHead = (idx + 1) % TimingRingSize
	if eventType == EvtTimerFire {
		dispatchCount++
	}
}

// DumpTimingRing outputs the timing ring buffer (call on shutdown/error).
func DumpTimingRing() {
	if debugPrintln == nil {
		return
	}

	debugPrintln("[TIMING] === Timing Ring Dump ===")
	debugPrintln("[TIMING] Total callbacks fired: " + itoa(int(dispatchCount)))

	start := timingRingHead
	for i := uint8(0); i < TimingRingSize; i++ {
		idx := (start + i) % TimingRingSize
		evt := &timingRing[idx]
		if evt.EventType == 0 {
			continue // Empty slot
		}

		var name string
		switch evt.EventType {
		case EvtTimerInsert:
			name = "TIMER_INSERT"
		case EvtTimerRemove:
			name = "TIMER_REMOVE"
		case EvtTimerFire:
			name = "TIMER_FIRE"
		case EvtTimerPast:
			name = "TIMER_PAST!"
		case EvtOverflow:
			name = "OVERFLOW"
		case EvtCompareReprogram:
			name = "COMPARE_REPROGRAM"
		case EvtWallClockSet:
			name = "WALLCLOCK_SET"
		default:
			name = "UNKNOWN"
		}

		debugPrintln("[TIMING] " + name +
			" prio=" + itoa(int(evt.Priority)) +
			" clock=" + utoa(evt.Clock) +
			" v1=" + utoa(evt.Value1) +
			" v2=" + utoa(evt.Value2))
	}
	debugPrintln("[TIMING] === End Dump ===")
}

// ClearTimingRing clears the timing buffer.
func ClearTimingRing() {
	for i := range timingRing {
		timingRing[i] = TimingEvent{}
	}
	timingRingHead = 0
	dispatchCount = 0
}
