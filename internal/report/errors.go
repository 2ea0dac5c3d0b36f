package report

import "fmt"

// ConfigurationError reports a missing or invalid strategy. It is raised
// before any data is touched.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string { return e.Message }

// ValidationError reports a malformed seller, product, record or item. The
// whole analysis is aborted; no partial report is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError reports a purchase referencing a seller id or SKU absent
// from the indices.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// ComputationError reports a revenue strategy failure attributed to a SKU.
type ComputationError struct {
	SKU string
	Err error
}

func (e *ComputationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("revenue computation failed for sku %s: %v", e.SKU, e.Err)
	}
	return fmt.Sprintf("revenue computation failed for sku %s: result out of range", e.SKU)
}

// Unwrap exposes the underlying strategy failure to errors.Is/As.
func (e *ComputationError) Unwrap() error { return e.Err }

func validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
