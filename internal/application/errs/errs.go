package errs

import (
	"fmt"
	"strings"
)

// ValidationError rejects a submission before any email is constructed.
// Fields holds the names of the missing form fields.
type ValidationError struct {
	Fields []string
}

func (t ValidationError) Error() string {
	return fmt.Sprintf("Missing: %s", strings.Join(t.Fields, ", "))
}

// ConfigError means the deployment is missing a required mail setting.
// The caller cannot fix this; an operator has to.
type ConfigError struct {
	Reason string
}

func (t ConfigError) Error() string {
	return t.Reason
}

// DeliveryError wraps a failure during the SMTP session.
type DeliveryError struct {
	Err error
}

func (t DeliveryError) Error() string {
	return fmt.Sprintf("Email send failed: %v", t.Err)
}

func (t DeliveryError) Unwrap() error {
	return t.Err
}
