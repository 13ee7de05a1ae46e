package errs

import (
	"errors"
	"fmt"

	"github.com/campuslib/circulation-service/internal/model"
)

var (
	ErrNotFound = errors.New("not found")

	ErrDuplicateEmail   = errors.New("email already registered")
	ErrDuplicateMobile  = errors.New("mobile already registered")
	ErrDuplicateRfid    = errors.New("rfid already registered")
	ErrDuplicateBarcode = errors.New("barcode already in use")

	ErrNoCopiesAvailable   = errors.New("no copies available")
	ErrAlreadyIssued       = errors.New("book already issued to borrower")
	ErrBorrowLimitExceeded = errors.New("borrow limit exceeded")
	ErrNoSuchLoan          = errors.New("no such open loan")

	ErrBookCurrentlyIssued = errors.New("book is currently issued")
	ErrCategoryNotEmpty    = errors.New("category still has books")
	ErrPersonHasLoans      = errors.New("person holds open loans")
)

// ValidationError reports a malformed input field. It is surfaced verbatim.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ConflictError wraps a duplicate-identity sentinel together with the
// account that already owns the contact value.
type ConflictError struct {
	Err     error
	Account *model.AccountSummary
}

func (e *ConflictError) Error() string {
	if e.Account == nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: held by %s %q (%s)", e.Err, e.Account.Kind, e.Account.Name, e.Account.ExternalID)
}

func (e *ConflictError) Unwrap() error { return e.Err }
