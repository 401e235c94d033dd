// Package errors carries structured errors for hover. An error records the
// operation that failed, a category callers can branch on, and the wrapped
// cause. Messages compose as "op: context: cause".
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Op identifies the failing operation, usually "package.Function".
type Op string

// Kind classifies an error for callers that switch on failure mode rather
// than message text.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalid
	KindConfig
	KindMenu
	KindState
)

var kindNames = map[Kind]string{
	KindInvalid: "invalid",
	KindConfig:  "configuration error",
	KindMenu:    "menu error",
	KindState:   "state error",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown error"
}

// Error wraps a cause with the operation and category it failed under.
type Error struct {
	Op      Op
	Kind    Kind
	Err     error
	Context string
}

// Error joins the non-empty parts with ": ". The wrapped cause is always
// last so chains read outermost-first.
func (e *Error) Error() string {
	parts := make([]string, 0, 3)
	if e.Op != "" {
		parts = append(parts, string(e.Op))
	}
	if e.Context != "" {
		parts = append(parts, e.Context)
	}
	parts = append(parts, e.Err.Error())
	return strings.Join(parts, ": ")
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E assembles an *Error from its arguments in any order: an Op, a Kind, a
// context string, and an error to wrap. When no error argument is given the
// context string becomes the cause itself. Unrecognized argument types are
// ignored.
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch v := arg.(type) {
		case Op:
			e.Op = v
		case Kind:
			e.Kind = v
		case error:
			e.Err = v
		case string:
			e.Context = v
		}
	}
	if e.Err == nil {
		// No cause given: the context line becomes the cause.
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether the outermost *Error in err's chain carries the given
// Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// GetKind returns the Kind of the outermost *Error in err's chain, or
// KindUnknown when there is none.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Shared constructors for failures reported from more than one place.

func DuplicateSection(id string) error {
	return E(Op("menu.SetSections"), KindMenu, fmt.Sprintf("duplicate section id %s", id))
}

func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("loading %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("saving %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}

func TransitionRejected(from, to string) error {
	return E(Op("hover.transition"), KindState, fmt.Sprintf("cannot transition from %s to %s", from, to))
}
