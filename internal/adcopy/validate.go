package adcopy

import "github.com/postpilot/postpilot/internal/validation"

// Validate checks req against its field rules. Failures are returned as a
// *validation.Error listing every invalid field.
func Validate(req Request) error {
	if req == nil {
		return validation.Struct(nil)
	}
	return validation.Struct(req)
}
