package error

import "errors"

// Email delivery errors. They never reach API callers: queueing failures are
// logged by the use cases and send failures are recorded on the job.
var (
	ErrEmailQueueFailed      = errors.New("failed to queue email")
	ErrEmailSendFailed       = errors.New("failed to send email")
	ErrUnknownEmailTemplate  = errors.New("unknown email template")
	ErrPermanentEmailFailure = errors.New("permanent email failure")
)

// EmailErrorCode identifies an email error. Format: EMAIL-XXYYYY.
type EmailErrorCode string

const (
	ErrCodeEmailQueueFailed      EmailErrorCode = "EMAIL-010001"
	ErrCodeEmailSendFailed       EmailErrorCode = "EMAIL-020001"
	ErrCodePermanentEmailFailure EmailErrorCode = "EMAIL-020002"
	ErrCodeUnknownEmailTemplate  EmailErrorCode = "EMAIL-030001"
)

// EmailError wraps a provider or queue failure with a code.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsPermanentEmailFailure reports whether retrying err cannot succeed.
func IsPermanentEmailFailure(err error) bool {
	return errors.Is(err, ErrPermanentEmailFailure)
}
