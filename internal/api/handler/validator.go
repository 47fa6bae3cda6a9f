package handler

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/taskvault/task-api/internal/core/service"
)

var usernameTagPattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,30}$`)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
// Two custom tags are registered on top of the built-ins:
//
//	username        – 3-30 characters, letters/digits/underscores
//	strongpassword  – min 8 chars with upper, lower, and digit
func NewValidator() *echoValidator {
	v := validator.New()

	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameTagPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return len(service.PasswordStrengthIssues(fl.Field().String())) == 0
	})

	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "username":
		return "Username must be 3-30 characters and contain only letters, numbers, and underscores"
	case "strongpassword":
		issues := service.PasswordStrengthIssues(fmt.Sprintf("%v", fe.Value()))
		return "Password must contain " + strings.Join(issues, ", ")
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
