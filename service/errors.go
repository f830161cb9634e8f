package service

import (
	"fmt"
	"time"

	"economy/models"
)

// ValidationError is returned when a command's arguments or funds are rejected
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// CooldownError is returned when an action is invoked before its cooldown elapsed
type CooldownError struct {
	Action    models.GameType
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("%s is on cooldown, try again in %d seconds", e.Action, e.RemainingSeconds())
}

// RemainingSeconds returns the wait in whole seconds, never less than one
func (e *CooldownError) RemainingSeconds() int64 {
	secs := int64(e.Remaining / time.Second)
	if e.Remaining%time.Second != 0 {
		secs++
	}
	if secs < 1 {
		secs = 1
	}
	return secs
}

// PersistenceError wraps a failed load or save of the ledger
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s ledger: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
