package core

// Event bits delivered to ProcessTimerIRQ, combined from the HAL's two
// interrupt sources.
const (
	FlagOverflow uint8 = 1 << iota
	FlagCompare
)

func counterMask(bits uint8) uint32 {
	if bits >= 32 {
		return 0xFFFFFFFF
	}
	return (uint32(1) << bits) - 1
}

// modSub computes (a - b) in the N-bit modular ring via unsigned
// wraparound subtraction, never signed comparison, per the modular
// arithmetic rule that governs every counter comparison in this package.
func modSub(a, b uint32, bits uint8) uint32 {
	return (a - b) & counterMask(bits)
}

// deltaListInsertTimer splices h into the delta list so that it fires
// after `timeout` ticks measured against the list's current reference
// point, keeping the list ordered by absolute deadline with ties broken
// by insertion order. Priority only affects firing order among timers
// that share a deadline; see the dispatch loop in dispatchCompare.
func deltaListInsertTimer(ctx *schedulerContext, h *TimerHandle, timeout uint32) {
	var prev *TimerHandle
	cur := ctx.head
	for cur != nil && timeout >= cur.delta {
		timeout -= cur.delta
		prev = cur
		cur = cur.next
	}
	h.delta = timeout
	h.next = cur
	if cur != nil {
		cur.delta -= timeout
	}
	if prev == nil {
		ctx.head = h
	} else {
		prev.next = h
	}
	RecordTiming(EvtTimerInsert, h.priority, ctx.lastDeltaUpdateCount, h.delta, h.timeoutPeriodic)
}

// deltaListRemoveTimer unlinks h from the delta list, folding its delta
// into the successor so later nodes retain their absolute deadlines.
func deltaListRemoveTimer(ctx *schedulerContext, h *TimerHandle) error {
	var prev *TimerHandle
	cur := ctx.head
	for cur != nil {
		if cur == h {
			if cur.next != nil {
				cur.next.delta += cur.delta
			}
			if prev == nil {
				ctx.head = cur.next
			} else {
				prev.next = cur.next
			}
			cur.next = nil
			RecordTiming(EvtTimerRemove, h.priority, ctx.lastDeltaUpdateCount, h.delta, 0)
			return nil
		}
		prev = cur
		cur = cur.next
	}
	return StatusInvalidState
}

// updateFirstTimerDelta refreshes the head's delta against the current
// counter value. Must be called before any list query or before the
// head is read or written.
func updateFirstTimerDelta(ctx *schedulerContext, now uint32) {
	if ctx.head == nil {
		ctx.lastDeltaUpdateCount = now
		return
	}
	diff := modSub(now, ctx.lastDeltaUpdateCount, ctx.counterBits)
	if ctx.head.delta >= diff {
		ctx.head.delta -= diff
	} else {
		ctx.head.delta = 0
		RecordTiming(EvtTimerPast, ctx.head.priority, now, diff, ctx.head.delta)
	}
	ctx.lastDeltaUpdateCount = now
}

// setComparatorForNextTimer programs the compare register to fire at the
// head's deadline. Must be called under a critical section.
func setComparatorForNextTimer(ctx *schedulerContext) {
	if ctx.head == nil {
		return
	}
	target := (ctx.lastDeltaUpdateCount + ctx.head.delta) & counterMask(ctx.counterBits)
	ctx.hal.SetCompare(target)
	ctx.hal.EnableInt(EventCompare)
	RecordTiming(EvtCompareReprogram, ctx.head.priority, ctx.lastDeltaUpdateCount, target, 0)
}

// refreshCompare reprograms the compare register for the new head, or
// disables the compare-match interrupt if the list has gone empty.
func refreshCompare(ctx *schedulerContext) {
	if ctx.head != nil {
		setComparatorForNextTimer(ctx)
	} else {
		ctx.hal.DisableInt(EventCompare)
	}
}

// ProcessTimerIRQ is the single entry point the HAL calls from interrupt
// context, carrying a bitmask of the events it observed. The HAL never
// reaches into scheduler state directly.
func ProcessTimerIRQ(flags uint8) {
	ctx := defaultCtx
	if ctx == nil {
		return
	}
	state := enterCritical()
	if flags&FlagOverflow != 0 {
		handleOverflow(ctx)
	}
	if flags&FlagCompare != 0 {
		state = dispatchCompare(ctx, state)
	}
	exitCritical(state)
}

func handleOverflow(ctx *schedulerContext) {
	ctx.overflowCounter++
	RecordTiming(EvtOverflow, 0, ctx.hal.GetCounter(), uint32(ctx.overflowCounter), 0)
	if ctx.cfg.EnableWallClock {
		advanceWallClock(ctx)
	}
	now := ctx.hal.GetCounter()
	updateFirstTimerDelta(ctx, now)
	refreshCompare(ctx)
}

// dispatchCompare runs the compare-match dispatch loop. Each pass over
// the outer loop finds, among the timers due within deltaTot, the one
// with the lowest priority number (ties broken by list position, i.e.
// insertion order), fires it, and folds it out of the list; timers that
// were due in the same pass but lost the priority tie stay linked with
// their deltas unchanged and are picked up by a later pass. Callbacks run with the critical section
// released, so the function takes and returns the critical-section
// token it is currently holding across the exit/re-enter pairs around
// each callback.
func dispatchCompare(ctx *schedulerContext, state criticalState) criticalState {
	now := ctx.hal.GetCounter()
	deltaTot := modSub(now, ctx.lastDeltaUpdateCount, ctx.counterBits)

	for ctx.head != nil && deltaTot >= ctx.head.delta {
		ctx.lastDeltaUpdateCount = now

		chosen := ctx.head
		remaining := deltaTot
		for cur := ctx.head; cur != nil && remaining >= cur.delta; cur = cur.next {
			if chosen.priority > cur.priority {
				chosen = cur
			}
			remaining -= cur.delta
		}

		deltaTot -= chosen.delta
		chosen.delta = 0
		_ = deltaListRemoveTimer(ctx, chosen)

		if chosen.timeoutPeriodic != 0 {
			deltaListInsertTimer(ctx, chosen, chosen.timeoutPeriodic)
		}

		cb, data := chosen.callback, chosen.callbackData
		RecordTiming(EvtTimerFire, chosen.priority, now, deltaTot, 0)

		exitCritical(state)
		if cb != nil {
			cb(chosen, data)
		}
		state = enterCritical()

		newNow := ctx.hal.GetCounter()
		deltaTot += modSub(newNow, now, ctx.counterBits)
		now = newNow
	}

	if ctx.head != nil {
		ctx.head.delta -= deltaTot
		ctx.lastDeltaUpdateCount = now
		setComparatorForNextTimer(ctx)
	} else {
		ctx.lastDeltaUpdateCount = now
		ctx.hal.DisableInt(EventCompare)
	}
	return state
}

// createTimer implements the shared body of Start/Restart/StartPeriodic/
// RestartPeriodic, including the timeout_initial == 0 synchronous-fire
// edge policy.
func createTimer(h *TimerHandle, timeoutInitial, timeoutPeriodic uint32, cb Callback, data interface{}, priority uint8, flags uint16) {
	h.timeoutPeriodic = timeoutPeriodic
	h.callback = cb
	h.callbackData = data
	h.priority = priority
	h.optionFlags = flags

	ctx := defaultCtx

	if timeoutInitial == 0 {
		if cb != nil {
			cb(h, data)
		}
		if timeoutPeriodic != 0 {
			state := enterCritical()
			updateFirstTimerDelta(ctx, ctx.hal.GetCounter())
			deltaListInsertTimer(ctx, h, timeoutPeriodic)
			refreshCompare(ctx)
			exitCritical(state)
		}
		return
	}

	state := enterCritical()
	updateFirstTimerDelta(ctx, ctx.hal.GetCounter())
	deltaListInsertTimer(ctx, h, timeoutInitial)
	refreshCompare(ctx)
	exitCritical(state)
}

func isLinked(ctx *schedulerContext, h *TimerHandle) bool {
	for cur := ctx.head; cur != nil; cur = cur.next {
		if cur == h {
			return true
		}
	}
	return false
}
