package mint

import "github.com/pkg/errors"

var (
	// ErrUnknownMonitor is returned when a fullscreen monitor name matches
	// no connected monitor.
	ErrUnknownMonitor = errors.New("mint: unknown monitor")

	// ErrStackUnderflow is returned by Pop when only the base state remains.
	ErrStackUnderflow = errors.New("mint: state stack underflow")

	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("mint: invalid config")
)

// InternalError wraps a failure reported by the windowing system or the
// graphics driver. The context that produced it should be treated as broken.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return "mint: " + e.Op + ": " + e.Err.Error()
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Internal wraps err in an InternalError carrying a stack trace. It returns
// nil when err is nil.
func Internal(op string, err error) error {
	if err == nil {
		return nil
	}
	return errors.WithStack(&InternalError{Op: op, Err: err})
}
