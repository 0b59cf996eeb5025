package place

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"yellowbooks/internal/validation"
)

// ErrNotFound is returned when no place has the requested id.
var ErrNotFound = errors.New("place not found")

// ValidationError reports input that was rejected before reaching the store.
type ValidationError struct {
	Message string
	Details []validation.FieldError
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError whose message lists the
// offending fields, mirroring "Missing required fields: a, b" for absent input.
func NewValidationError(details []validation.FieldError) *ValidationError {
	var missing, invalid []string
	for _, d := range details {
		if d.IsMissing() {
			missing = append(missing, d.Field)
		} else {
			invalid = append(invalid, d.Field)
		}
	}

	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "Missing required fields: "+strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		parts = append(parts, "Invalid fields: "+strings.Join(invalid, ", "))
	}
	return &ValidationError{Message: strings.Join(parts, "; "), Details: details}
}

// StoreError wraps any persistence failure other than not-found.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// SafeMessage returns a message that can be shown to clients, or "" when
// the underlying error must stay internal.
func (e *StoreError) SafeMessage() string {
	var pgErr *pgconn.PgError
	if errors.As(e.Err, &pgErr) && strings.HasPrefix(pgErr.Code, "23") {
		if pgErr.ConstraintName != "" {
			return "constraint violation: " + pgErr.ConstraintName
		}
		return "constraint violation"
	}
	return ""
}

func storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}
