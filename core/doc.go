// Package core implements a low-power sleep-timer service on top of a
// single free-running hardware counter with compare/overflow
// interrupts: a delta-list scheduler for software one-shot and periodic
// timers, a 64-bit monotonic tick stream, and an optional wall clock
// with calendar and epoch conversions.
//
// The hardware itself is supplied by the caller through the HAL
// interface; see the simulator and targets/rp2040 packages for two
// implementations.
package core
