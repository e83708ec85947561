//go:build tinygo

package core

import "runtime/interrupt"

// criticalState is the interrupt-enable state saved on entry to a
// critical section and restored on exit.
type criticalState = interrupt.State

// enterCritical disables interrupts and returns the previous state.
// Critical sections nest: each enterCritical/exitCritical pair saves and
// restores exactly the state that was current when it was entered.
func enterCritical() criticalState {
	return interrupt.Disable()
}

// exitCritical restores the interrupt state saved by enterCritical.
func exitCritical(state criticalState) {
	interrupt.Restore(state)
}
