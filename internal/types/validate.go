//nolint:revive // types is a standard Go package name pattern
package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the resume against the data model constraints: required
// contact fields, email/URL syntax, minimum summary and description lengths,
// and the proficiency enums.
func (r *Resume) Validate() error {
	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return formatFieldErrors(verrs)
		}
		return err
	}
	return nil
}

// formatFieldErrors turns validator output into a readable, field-addressed error.
func formatFieldErrors(verrs validator.ValidationErrors) error {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid resume: %s", strings.Join(parts, "; "))
}
