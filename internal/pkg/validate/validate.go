package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// v is the package-level singleton validator. Custom registrations must be
// made in init() before the first call to Struct.
var v = validator.New(validator.WithRequiredStructEnabled())

// RegisterStructValidation adds a cross-field rule for the given struct types.
// Call it from an init function.
func RegisterStructValidation(fn validator.StructLevelFunc, types ...any) {
	v.RegisterStructValidation(fn, types...)
}

// Struct validates s using its validate tags. The returned error lists every
// failing field as "Field: tag[=param]".
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Namespace(), rule))
	}
	return errors.New(strings.Join(msgs, "; "))
}
