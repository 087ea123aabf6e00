package gammashield

import (
	"errors"
	"fmt"
)

// ErrDomain is matched by every *DomainError via errors.Is.
var ErrDomain = errors.New("value outside domain")

// DomainError reports an input outside the domain of the natural logarithm.
type DomainError struct {
	Operation string  // Function that rejected the input
	Quantity  string  // What the value represents ("shielding factor", ...)
	Value     float64 // Rejected value
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s %g outside domain (0, +Inf)", e.Operation, e.Quantity, e.Value)
}

// Is makes errors.Is(err, ErrDomain) true for any DomainError.
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}
