package errs

import "errors"

// Failure taxonomy shared by every layer. Lower layers Mark their errors with
// one of these so the transport can map them without string matching.
var (
	// caller-fixable: malformed date/slot/email/phone, bad party composition,
	// unknown region, missing or expired hold
	ErrInvalidInput = errors.New("invalid input")

	// no tables left when acquiring a hold
	ErrConflict = errors.New("conflict")

	// unknown region, reservation or session hold
	ErrNotFound = errors.New("not found")

	// region policy mismatch (capacity, children, smoking)
	ErrIneligible = errors.New("ineligible")

	// storage or notifier failure; never shown verbatim to callers
	ErrInternal = errors.New("internal failure")
)
