package core

import "testing"

func TestStartTimerAlreadyRunningReturnsNotReady(t *testing.T) {
	hal := newFakeHAL(32, 1000)
	if err := Init(hal, Config{CounterBits: 32}); err != nil {
		t.Fatalf("Init: %v", err)
	}

	var h TimerHandle
	if s := StartTimer(&h, 100, func(*TimerHandle, interface{}) {}, nil, 0, 0); s != StatusOK {
		t.Fatalf("first start: %v", s)
	}
	if s := StartTimer(&h, 100, func(*TimerHandle, interface{}) {}, nil, 0, 0); s != StatusNotReady {
		t.Fatalf("expected NotReady for restarting a running one-shot, got %v", s)
	}
}

func TestStartPeriodicTimerAlreadyRunningReturnsInvalidState(t *testing.T) {
	hal := newFakeHAL(32, 1000)
	if err := Init(hal, Config{CounterBits: 32}); err != nil {
		t.Fatalf("Init: %v", err)
	}

	var h TimerHandle
	if s := StartPeriodicTimer(&h, 100, 100, func(*TimerHandle, interface{}) {}, nil, 0, 0); s != StatusOK {
		t.Fatalf("first start: %v", s)
	}
	if s := StartPeriodicTimer(&h, 100, 100, func(*TimerHandle, interface{}) {}, nil, 0, 0); s != StatusInvalidState {
		t.Fatalf("expected InvalidState for restarting a running periodic timer, got %v", s)
	}
}

func TestRestartTimerReplacesRunningOne(t *testing.T) {
	hal := newFakeHAL(32, 1000)
	if err := Init(hal, Config{CounterBits: 32}); err != nil {
		t.Fatalf("Init: %v", err)
	}

	fired := 0
	var h TimerHandle
	StartTimer(&h, 1000, func(*TimerHandle, interface{}) { fired++ }, nil, 0, 0)

	if s := RestartTimer(&h, 50, func(*TimerHandle, interface{}) { fired++ }, nil, 0, 0); s != StatusOK {
		t.Fatalf("restart: %v", s)
	}

	hal.advance(50)
	if fired != 1 {
		t.Fatalf("expected the restarted timer to fire once at its new deadline, got %d", fired)
	}
}

func TestGetTimerTimeRemaining(t *testing.T) {
	hal := newFakeHAL(32, 1000)
	if err := Init(hal, Config{CounterBits: 32}); err != nil {
		t.Fatalf("Init: %v", err)
	}

	var h TimerHandle
	StartTimer(&h, 500, func(*TimerHandle, interface{}) {}, nil, 0, 0)

	hal.advance(200)
	remaining, s := GetTimerTimeRemaining(&h)
	if s != StatusOK {
		t.Fatalf("GetTimerTimeRemaining: %v", s)
	}
	if remaining != 300 {
		t.Fatalf("expected 300 ticks remaining, got %d", remaining)
	}
}

func TestGetTimerTimeRemainingNotRunning(t *testing.T) {
	hal := newFakeHAL(32, 1000)
	if err := Init(hal, Config{CounterBits: 32}); err != nil {
		t.Fatalf("Init: %v", err)
	}

	var h TimerHandle
	if _, s := GetTimerTimeRemaining(&h); s != StatusNotReady {
		t.Fatalf("expected NotReady for a handle not in the list, got %v", s)
	}
}

func TestGetRemainingTimeOfFirstTimerByFlags(t *testing.T) {
	hal := newFakeHAL(32, 1000)
	if err := Init(hal, Config{CounterBits: 32}); err != nil {
		t.Fatalf("Init: %v", err)
	}

	var a, b TimerHandle
	StartTimer(&a, 100, func(*TimerHandle, interface{}) {}, nil, 0, 0x1)
	StartTimer(&b, 200, func(*TimerHandle, interface{}) {}, nil, 0, 0x2)

	remaining, s := GetRemainingTimeOfFirstTimer(0x2)
	if s != StatusOK {
		t.Fatalf("GetRemainingTimeOfFirstTimer: %v", s)
	}
	if remaining != 200 {
		t.Fatalf("expected 200 ticks remaining for flag 0x2, got %d", remaining)
	}
}

func TestGetRemainingTimeOfFirstTimerEmpty(t *testing.T) {
	hal := newFakeHAL(32, 1000)
	if err := Init(hal, Config{CounterBits: 32}); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if _, s := GetRemainingTimeOfFirstTimer(0x9); s != StatusEmpty {
		t.Fatalf("expected Empty for no matching handle, got %v", s)
	}
}

func TestIsTimerRunning(t *testing.T) {
	hal := newFakeHAL(32, 1000)
	if err := Init(hal, Config{CounterBits: 32}); err != nil {
		t.Fatalf("Init: %v", err)
	}

	var h TimerHandle
	if IsTimerRunning(&h) {
		t.Fatal("expected a fresh handle to not be running")
	}
	StartTimer(&h, 1000, func(*TimerHandle, interface{}) {}, nil, 0, 0)
	if !IsTimerRunning(&h) {
		t.Fatal("expected the handle to be running after StartTimer")
	}
}

func TestStartTimerNullHandle(t *testing.T) {
	hal := newFakeHAL(32, 1000)
	if err := Init(hal, Config{CounterBits: 32}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if s := StartTimer(nil, 100, func(*TimerHandle, interface{}) {}, nil, 0, 0); s != StatusNullPointer {
		t.Fatalf("expected NullPointer for a nil handle, got %v", s)
	}
}
