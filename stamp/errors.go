package stamp

import "errors"

// Kind is a stable category for programmatic error handling.
//
// These categories are intended to remain stable across versions. Callers
// should branch on Kind/RuleID rather than matching error strings.
type Kind string

const (
	KindEmptyContent        Kind = "EmptyContent"
	KindInsufficientEntropy Kind = "InsufficientEntropy"
	KindAlreadySigned       Kind = "AlreadySigned"
)

// Error is the package's structured error type.
//
// RuleID is a stable identifier (e.g., PLH-SIGN-001) naming the violated
// issuance precondition. Message is intended for humans; do not match on it.
type Error struct {
	Kind    Kind
	RuleID  string
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func newError(kind Kind, ruleID, msg string) error {
	return &Error{Kind: kind, RuleID: ruleID, Message: msg}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// RuleID returns the stable RuleID for a structured error, or "" if unknown.
func RuleID(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.RuleID
}
