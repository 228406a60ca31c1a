package story

import (
	"errors"
	"fmt"
)

var (
	ErrSubmissionRejected = errors.New("action submission rejected")
	ErrPayment            = errors.New("payment failed")
	ErrInvariant          = errors.New("invariant violation")
)

// SubmissionRejectedError carries the user-facing rejection text. Warning
// marks the one-time first-submit prompt, which a second submit overrides.
type SubmissionRejectedError struct {
	Msg            string
	Warning        bool
	UnreadyAssists []string
}

func (e *SubmissionRejectedError) Error() string { return e.Msg }

func (e *SubmissionRejectedError) Unwrap() error { return ErrSubmissionRejected }

func Rejectf(format string, args ...any) error {
	return &SubmissionRejectedError{Msg: fmt.Sprintf(format, args...)}
}

type PaymentError struct {
	Resource ResourceType
	Amount   int
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("cannot afford %d %s", e.Amount, e.Resource)
}

func (e *PaymentError) Unwrap() error { return ErrPayment }
