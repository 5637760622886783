package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Status is the lifecycle state of an order.
type Status string

const (
	StatusNew       Status = "new"
	StatusAccepted  Status = "accepted"
	StatusCompleted Status = "completed"
)

// Statuses lists every status in lifecycle order.
var Statuses = []Status{StatusNew, StatusAccepted, StatusCompleted}

// next holds the only legal successor of each non-terminal status.
var next = map[Status]Status{
	StatusNew:      StatusAccepted,
	StatusAccepted: StatusCompleted,
}

func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(s)))
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return status, nil
}

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusAccepted, StatusCompleted:
		return true
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusCompleted
}

// Next returns the successor status, or false for the terminal status.
func (s Status) Next() (Status, bool) {
	n, ok := next[s]
	return n, ok
}

// CanTransition reports whether an order may move from one status to
// another. Only adjacent forward moves are allowed.
func CanTransition(from, to Status) bool {
	n, ok := next[from]
	return ok && n == to
}

// TransitionError describes a rejected status change.
type TransitionError struct {
	OrderID uuid.UUID
	From    Status
	To      Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("order %s: cannot move from %q to %q", shortID(e.OrderID), e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// ValidateTransition returns nil when from == to (re-applying a status is a
// no-op) or when the move is legal, and a *TransitionError otherwise.
func ValidateTransition(orderID uuid.UUID, from, to Status) error {
	if !to.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, to)
	}
	if from == to || CanTransition(from, to) {
		return nil
	}
	return &TransitionError{OrderID: orderID, From: from, To: to}
}

func shortID(id uuid.UUID) string {
	return strings.ToUpper(id.String()[:8])
}
