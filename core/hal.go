package core

// Event identifies one of the two interrupt sources the HAL multiplexes
// into ProcessTimerIRQ.
type Event uint8

const (
	EventOverflow Event = iota
	EventCompare
)

// HAL is the hardware abstraction the platform supplies: a single
// free-running N-bit counter with a compare register and two interrupt
// sources.
type HAL interface {
	// Init brings the counter up free-running from 0. Idempotent.
	Init() error
	// CounterBits returns N, the counter's width in bits.
	CounterBits() uint8
	// GetCounter returns the current N-bit counter value, zero-extended.
	GetCounter() uint32
	// GetFrequency returns the effective tick rate in Hz.
	GetFrequency() uint32
	// SetCompare programs the next compare-match target (mod 2^N).
	SetCompare(value uint32)
	// EnableInt enables the interrupt for the given event.
	EnableInt(ev Event)
	// DisableInt disables the interrupt for the given event.
	DisableInt(ev Event)
}
