package pokemon

import (
	"github.com/go-playground/validator/v10"

	"pokedex/internal/domain/common"
)

var validate = validator.New()

// validateName checks the inbound path parameter before it reaches any
// upstream. Failures surface as ValidationError (400 at the boundary).
func validateName(name string) error {
	var messages []string

	if err := validate.Var(name, "required,max=128"); err != nil {
		messages = append(messages, "name must be between 1 and 128 characters")
	}
	if err := validate.Var(name, "printascii"); err != nil {
		messages = append(messages, "name contains invalid characters")
	}

	if len(messages) > 0 {
		return common.ValidationError{Messages: messages}
	}
	return nil
}
