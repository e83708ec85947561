package core

// Init registers the HAL and brings the scheduler up. Idempotent: calling
// it again rebuilds the singleton state from scratch.
func Init(h HAL, cfg Config) error {
	if h == nil {
		return StatusNullPointer
	}
	if err := h.Init(); err != nil {
		return err
	}

	bits := cfg.CounterBits
	if bits == 0 {
		bits = h.CounterBits()
	}

	ctx := &schedulerContext{
		hal:         h,
		cfg:         cfg,
		counterBits: bits,
		frequencyHz: h.GetFrequency(),
	}
	defaultCtx = ctx

	if cfg.EnableWallClock {
		initWallClock(ctx)
	}

	h.EnableInt(EventOverflow)
	SetDebugEnabled(cfg.DebugEnabled)
	return nil
}

// StartTimer starts a one-shot timer. Returns NotReady if h is already
// running.
func StartTimer(h *TimerHandle, timeout uint32, cb Callback, data interface{}, priority uint8, flags uint16) Status {
	if h == nil {
		return StatusNullPointer
	}
	ctx := defaultCtx
	if ctx == nil {
		return StatusInvalidState
	}
	state := enterCritical()
	running := isLinked(ctx, h)
	exitCritical(state)
	if running {
		return StatusNotReady
	}
	createTimer(h, timeout, 0, cb, data, priority, flags)
	return StatusOK
}

// RestartTimer silently stops h (if running) then starts it fresh.
func RestartTimer(h *TimerHandle, timeout uint32, cb Callback, data interface{}, priority uint8, flags uint16) Status {
	if h == nil {
		return StatusNullPointer
	}
	_ = StopTimer(h)
	createTimer(h, timeout, 0, cb, data, priority, flags)
	return StatusOK
}

// StartPeriodicTimer starts a periodic timer. Returns InvalidState if h
// is already running.
func StartPeriodicTimer(h *TimerHandle, timeoutInitial, timeoutPeriodic uint32, cb Callback, data interface{}, priority uint8, flags uint16) Status {
	if h == nil {
		return StatusNullPointer
	}
	ctx := defaultCtx
	if ctx == nil {
		return StatusInvalidState
	}
	state := enterCritical()
	running := isLinked(ctx, h)
	exitCritical(state)
	if running {
		return StatusInvalidState
	}
	createTimer(h, timeoutInitial, timeoutPeriodic, cb, data, priority, flags)
	return StatusOK
}

// RestartPeriodicTimer silently stops h (if running) then starts it
// fresh as a periodic timer.
func RestartPeriodicTimer(h *TimerHandle, timeoutInitial, timeoutPeriodic uint32, cb Callback, data interface{}, priority uint8, flags uint16) Status {
	if h == nil {
		return StatusNullPointer
	}
	_ = StopTimer(h)
	createTimer(h, timeoutInitial, timeoutPeriodic, cb, data, priority, flags)
	return StatusOK
}

// StopTimer removes h from the list. Safe to call from inside another
// timer's callback or from the foreground; returns InvalidState if h is
// not currently running.
func StopTimer(h *TimerHandle) Status {
	if h == nil {
		return StatusNullPointer
	}
	ctx := defaultCtx
	if ctx == nil {
		return StatusInvalidState
	}
	state := enterCritical()
	updateFirstTimerDelta(ctx, ctx.hal.GetCounter())
	wasHead := ctx.head == h
	if err := deltaListRemoveTimer(ctx, h); err != nil {
		exitCritical(state)
		return asStatus(err, StatusInvalidState)
	}
	if wasHead {
		refreshCompare(ctx)
	}
	exitCritical(state)
	return StatusOK
}

// IsTimerRunning reports whether h is currently linked into the list.
func IsTimerRunning(h *TimerHandle) bool {
	ctx := defaultCtx
	if ctx == nil || h == nil {
		return false
	}
	state := enterCritical()
	defer exitCritical(state)
	return isLinked(ctx, h)
}

// GetTimerTimeRemaining returns the ticks remaining before h fires.
// Fails with NotReady if h is not in the list.
func GetTimerTimeRemaining(h *TimerHandle) (uint32, Status) {
	if h == nil {
		return 0, StatusNullPointer
	}
	ctx := defaultCtx
	if ctx == nil {
		return 0, StatusNotReady
	}
	state := enterCritical()
	defer exitCritical(state)

	now := ctx.hal.GetCounter()
	updateFirstTimerDelta(ctx, now)

	var sum uint32
	for cur := ctx.head; cur != nil; cur = cur.next {
		sum += cur.delta
		if cur == h {
			return sum, StatusOK
		}
	}
	return 0, StatusNotReady
}

// GetRemainingTimeOfFirstTimer returns the ticks remaining before the
// first handle (in list order) whose OptionFlags equals flags. Fails
// with Empty if no handle matches.
func GetRemainingTimeOfFirstTimer(flags uint16) (uint32, Status) {
	ctx := defaultCtx
	if ctx == nil {
		return 0, StatusEmpty
	}
	state := enterCritical()
	defer exitCritical(state)

	now := ctx.hal.GetCounter()
	updateFirstTimerDelta(ctx, now)

	var sum uint32
	for cur := ctx.head; cur != nil; cur = cur.next {
		sum += cur.delta
		if cur.optionFlags == flags {
			return sum, StatusOK
		}
	}
	return 0, StatusEmpty
}
