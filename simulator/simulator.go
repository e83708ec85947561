// Package simulator provides software-only core.HAL implementations for
// testing and demonstration without real timer hardware.
package simulator

import (
	"time"

	"github.com/aristanetworks/goarista/monotime"

	"sleeptimer/core"
)

func counterMask(bits uint8) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << bits) - 1
}

// Manual is a core.HAL whose counter only moves when Advance is called,
// for deterministic unit and property tests.
type Manual struct {
	bits            uint8
	freq            uint32
	counter         uint32
	compareVal      uint32
	compareEnabled  bool
	overflowEnabled bool
}

// NewManual creates a manually-stepped HAL with an N-bit counter running
// at freq Hz.
func NewManual(bits uint8, freq uint32) *Manual {
	return &Manual{bits: bits, freq: freq}
}

func (m *Manual) Init() error {
	m.counter = 0
	return nil
}

func (m *Manual) CounterBits() uint8   { return m.bits }
func (m *Manual) GetCounter() uint32   { return m.counter }
func (m *Manual) GetFrequency() uint32 { return m.freq }

func (m *Manual) SetCompare(value uint32) {
	m.compareVal = value
}

func (m *Manual) EnableInt(ev core.Event) {
	switch ev {
	case core.EventOverflow:
		m.overflowEnabled = true
	case core.EventCompare:
		m.compareEnabled = true
	}
}

func (m *Manual) DisableInt(ev core.Event) {
	switch ev {
	case core.EventOverflow:
		m.overflowEnabled = false
	case core.EventCompare:
		m.compareEnabled = false
	}
}

// Advance moves the counter forward by n ticks one at a time, delivering
// overflow and compare-match IRQs synchronously in the caller's
// goroutine, exactly as a real ISR would deliver them inline.
func (m *Manual) Advance(n uint32) {
	mask := counterMask(m.bits)
	for i := uint32(0); i < n; i++ {
		next := uint64(m.counter) + 1
		if next > mask {
			m.counter = 0
			if m.overflowEnabled {
				core.ProcessTimerIRQ(core.FlagOverflow)
			}
		} else {
			m.counter = uint32(next)
		}
		if m.compareEnabled && m.counter == m.compareVal {
			core.ProcessTimerIRQ(core.FlagCompare)
		}
	}
}

// RealTime is a core.HAL driven from the OS monotonic clock via
// goarista/monotime, for demonstrations that exercise the scheduler
// against true wall-clock drift instead of manually-stepped ticks.
type RealTime struct {
	bits uint8
	freq uint32

	start           uint64
	lastCounter     uint32
	compareVal      uint32
	compareEnabled  bool
	compareFired    bool
	overflowEnabled bool

	stop chan struct{}
}

// NewRealTime creates a real-time-driven HAL with an N-bit counter
// running at freq Hz, derived from elapsed OS monotonic time.
func NewRealTime(bits uint8, freq uint32) *RealTime {
	return &RealTime{bits: bits, freq: freq}
}

func (r *RealTime) Init() error {
	r.start = monotime.Now()
	r.stop = make(chan struct{})
	go r.run()
	return nil
}

// Close stops the background polling goroutine.
func (r *RealTime) Close() {
	if r.stop != nil {
		close(r.stop)
	}
}

func (r *RealTime) CounterBits() uint8   { return r.bits }
func (r *RealTime) GetFrequency() uint32 { return r.freq }

func (r *RealTime) GetCounter() uint32 {
	elapsedNs := monotime.Now() - r.start
	ticks := uint64(elapsedNs) * uint64(r.freq) / uint64(time.Second)
	return uint32(ticks & counterMask(r.bits))
}

func (r *RealTime) SetCompare(value uint32) {
	r.compareVal = value
	r.compareFired = false
}

func (r *RealTime) EnableInt(ev core.Event) {
	switch ev {
	case core.EventOverflow:
		r.overflowEnabled = true
	case core.EventCompare:
		r.compareEnabled = true
	}
}

func (r *RealTime) DisableInt(ev core.Event) {
	switch ev {
	case core.EventOverflow:
		r.overflowEnabled = false
	case core.EventCompare:
		r.compareEnabled = false
	}
}

// run polls the monotonic clock at a fine grain and synthesizes
// overflow/compare IRQs from the observed counter movement, since there
// is no real interrupt controller backing this HAL.
func (r *RealTime) run() {
	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			cur := r.GetCounter()
			if cur < r.lastCounter && r.overflowEnabled {
				core.ProcessTimerIRQ(core.FlagOverflow)
			}
			if r.compareEnabled && !r.compareFired && cur >= r.compareVal {
				r.compareFired = true
				core.ProcessTimerIRQ(core.FlagCompare)
			}
			r.lastCounter = cur
		}
	}
}
