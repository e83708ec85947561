package core

// wallClockState holds the feature-gated wall clock's process-wide
// fields. Only touched under a critical section, either from the
// overflow IRQ (advanceWallClock) or from the foreground (GetTime/SetTime).
type wallClockState struct {
	secondCount      int64
	overflowTickRest uint32
	tzOffset         int32
	calcSec          uint32
	calcRest         uint32
}

// initWallClock derives calcSec/calcRest once from the configured
// frequency: calc_sec = floor(2^N / F), calc_rest = 2^N mod F.
func initWallClock(ctx *schedulerContext) {
	var total uint64
	if ctx.counterBits >= 32 {
		total = uint64(1) << 32
	} else {
		total = uint64(1) << ctx.counterBits
	}
	f := uint64(ctx.frequencyHz)
	ctx.wallClock.calcSec = uint32(total / f)
	ctx.wallClock.calcRest = uint32(total % f)
	ctx.wallClock.secondCount = ctx.cfg.InitialSeconds
	ctx.wallClock.tzOffset = ctx.cfg.TZOffsetSeconds
}

// advanceWallClock is called once per overflow IRQ, before the delta
// list is refreshed.
func advanceWallClock(ctx *schedulerContext) {
	wc := &ctx.wallClock
	f := ctx.frequencyHz
	wc.overflowTickRest += wc.calcRest
	if wc.overflowTickRest >= f {
		wc.overflowTickRest -= f
		wc.secondCount++
	}
	wc.secondCount += int64(wc.calcSec)
}

// GetTime returns the current UNIX wall-clock time in seconds.
func GetTime() uint32 {
	ctx := defaultCtx
	state := enterCritical()
	defer exitCritical(state)

	wc := &ctx.wallClock
	now := ctx.hal.GetCounter()
	f := ctx.frequencyHz
	extra := int64(0)
	if now%f+wc.overflowTickRest >= f {
		extra = 1
	}
	return uint32(wc.secondCount + int64(now/f) + extra)
}

// SetTime sets the wall clock to t, a UNIX timestamp, rebasing
// second_count so the next GetTime reproduces it immediately.
func SetTime(t uint32) Status {
	if !isValidTime(uint64(t), epochUnix, 0) {
		return StatusInvalidParameter
	}
	ctx := defaultCtx
	state := enterCritical()
	defer exitCritical(state)

	wc := &ctx.wallClock
	now := ctx.hal.GetCounter()
	f := ctx.frequencyHz
	elapsed := int64(now / f)
	rebased := int64(t) - elapsed
	if rebased < 0 {
		return StatusInvalidParameter
	}
	wc.secondCount = rebased
	wc.overflowTickRest = 0
	RecordTiming(EvtWallClockSet, 0, now, t, 0)
	return StatusOK
}

// GetTZ returns the currently configured time-zone offset in seconds.
func GetTZ() int32 {
	ctx := defaultCtx
	return ctx.wallClock.tzOffset
}

// SetTZ sets the time-zone offset in seconds.
func SetTZ(offset int32) {
	ctx := defaultCtx
	state := enterCritical()
	ctx.wallClock.tzOffset = offset
	exitCritical(state)
}

// GetDatetime returns the current wall-clock time as a CalendarDate. The
// date fields are derived from the UNIX seconds as they are (see
// ConvertTimeToDate); the configured time-zone offset is only carried in
// TZOffset.
func GetDatetime() CalendarDate {
	return ConvertTimeToDate(GetTime(), GetTZ())
}

// SetDatetime sets the wall clock from a CalendarDate.
func SetDatetime(d CalendarDate) Status {
	t, status := ConvertDateToTime(d)
	if status != StatusOK {
		return status
	}
	return SetTime(t)
}
