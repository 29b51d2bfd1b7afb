package webtree

import (
	"errors"
	"fmt"
)

// Sentinel errors; match with errors.Is
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidTarget = errors.New("invalid move target")
	ErrCyclicMove    = errors.New("cyclic move")
	ErrDuplicateID   = errors.New("duplicate node id")
	ErrEmptyQuery    = errors.New("empty search query")
)

// MoveErrorKind classifies a rejected move
type MoveErrorKind uint8

const (
	// MoveNotFound means the item or the target id is absent
	MoveNotFound MoveErrorKind = iota + 1
	// MoveInvalidTarget means the target is not a folder
	MoveInvalidTarget
	// MoveCyclic means the target lies inside the moved folder's subtree
	MoveCyclic
)

func (k MoveErrorKind) String() string {
	switch k {
	case MoveNotFound:
		return "NotFound"
	case MoveInvalidTarget:
		return "InvalidTarget"
	case MoveCyclic:
		return "CyclicMove"
	default:
		return "Unknown"
	}
}

// MoveError is returned when a move is rejected. The tree is left untouched.
type MoveError struct {
	Kind     MoveErrorKind
	ItemID   int64
	TargetID int64
	Message  string
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move %d -> %d: %s", e.ItemID, e.TargetID, e.Message)
}

// Is allows errors.Is() to match against the sentinel for the error's kind
func (e *MoveError) Is(target error) bool {
	switch e.Kind {
	case MoveNotFound:
		return target == ErrNotFound
	case MoveInvalidTarget:
		return target == ErrInvalidTarget
	case MoveCyclic:
		return target == ErrCyclicMove
	}
	return false
}
