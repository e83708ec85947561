//go:build tinygo

// Package rp2040 implements core.HAL against the RP2040's free-running
// 1MHz timer/alarm block.
package rp2040

import (
	"runtime/volatile"
	"unsafe"

	"sleeptimer/core"
)

// Timer peripheral memory map (RP2040 datasheet §4.6).
const (
	timerBase     = 0x40054000
	timerTIMERAWH = timerBase + 0x08 // Raw timer high word
	timerTIMERAWL = timerBase + 0x0C // Raw timer low word
	timerALARM0   = timerBase + 0x10 // Alarm 0 compare target
	timerARMED    = timerBase + 0x20 // Alarm armed bitmask
	timerINTE     = timerBase + 0x38 // Interrupt enable
	timerINTF     = timerBase + 0x3C // Interrupt force
)

const alarm0Bit = 1 << 0

var (
	timerRAWH   = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWH)))
	timerRAWL   = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))
	timerAlarm0 = (*volatile.Register32)(unsafe.Pointer(uintptr(timerALARM0)))
	timerArmed  = (*volatile.Register32)(unsafe.Pointer(uintptr(timerARMED)))
	timerInte   = (*volatile.Register32)(unsafe.Pointer(uintptr(timerINTE)))
	timerIntf   = (*volatile.Register32)(unsafe.Pointer(uintptr(timerINTF)))
)

// HAL implements core.HAL against the RP2040's microsecond timer, using
// ALARM0 as the compare register. The RP2040 timer has no hardware
// overflow interrupt for the low word, so overflow is synthesized from
// the high word's low bit toggling (every 2^32 microsecond ticks).
type HAL struct {
	lastHigh uint32
}

func New() *HAL {
	return &HAL{}
}

func (h *HAL) Init() error {
	h.lastHigh = timerRAWH.Get()
	return nil
}

func (h *HAL) CounterBits() uint8 {
	return 32
}

func (h *HAL) GetCounter() uint32 {
	return timerRAWL.Get()
}

func (h *HAL) GetFrequency() uint32 {
	return 1000000 // RP2040 timer runs at 1MHz
}

func (h *HAL) SetCompare(value uint32) {
	timerAlarm0.Set(value)
}

func (h *HAL) EnableInt(ev core.Event) {
	switch ev {
	case core.EventCompare:
		timerInte.SetBits(alarm0Bit)
	case core.EventOverflow:
		// Synthesized in software from the high word; see PollOverflow.
	}
}

func (h *HAL) DisableInt(ev core.Event) {
	switch ev {
	case core.EventCompare:
		timerInte.ClearBits(alarm0Bit)
		timerArmed.SetBits(alarm0Bit) // writing ARMED clears a pending alarm
	case core.EventOverflow:
	}
}

// HandleAlarmIRQ is the RP2040 TIMER_IRQ_0 handler. Wire this up from
// the platform's interrupt vector table; it forwards into
// core.ProcessTimerIRQ the way every HAL implementation must.
func (h *HAL) HandleAlarmIRQ() {
	timerIntf.ClearBits(alarm0Bit)
	core.ProcessTimerIRQ(core.FlagCompare)
}

// PollOverflow must be called periodically from the foreground (it
// cannot be driven by a real interrupt on this silicon) to detect the
// microsecond timer's high word advancing and deliver a synthesized
// overflow event.
func (h *HAL) PollOverflow() {
	high := timerRAWH.Get()
	if high != h.lastHigh {
		h.lastHigh = high
		core.ProcessTimerIRQ(core.FlagOverflow)
	}
}
