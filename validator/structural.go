package validator

import (
	"context"
	"errors"

	"github.com/getkin/kin-openapi/openapi3"
)

// ValidateSpec validates data with kin-openapi. It returns one error per
// problem found, or nil when the document is valid. External references
// are not followed.
func ValidateSpec(ctx context.Context, data []byte) []error {
	loader := openapi3.NewLoader()
	loader.Context = ctx
	loader.IsExternalRefsAllowed = false

	doc, err := loader.LoadFromData(data)
	if err != nil {
		return []error{err}
	}
	if err := doc.Validate(ctx); err != nil {
		return splitErrors(err)
	}
	return nil
}

func splitErrors(err error) []error {
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		return []error(multi)
	}
	return []error{err}
}
