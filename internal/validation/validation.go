// Package validation schema-checks request payloads before any business
// logic runs. Limits come from one Policy value so the deployment, not the
// code, decides the exact numbers.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/srinjoywork/Module-5/internal/dto"
)

// FieldError is one per-field violation, reported back to the client.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the full set of violations for a payload. Empty means valid.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(parts, "; ")
}

// Policy holds the tunable limits. Defaults live in config.
type Policy struct {
	NameMinLen     int
	PasswordMinLen int
	TitleMinLen    int
	SubjectMinLen  int
	PriorityMin    int
	PriorityMax    int
}

// Validator checks payloads against a Policy.
type Validator struct {
	policy Policy
	v      *validator.Validate
}

func New(p Policy) *Validator {
	return &Validator{policy: p, v: validator.New()}
}

// Register validates a registration payload. Returns nil when valid.
func (va *Validator) Register(req dto.RegisterRequest) Errors {
	var errs Errors
	errs = va.checkMin(errs, "name", strings.TrimSpace(req.Name), va.policy.NameMinLen,
		fmt.Sprintf("Name must be at least %d characters", va.policy.NameMinLen))
	errs = va.checkEmail(errs, req.Email)
	errs = va.checkMin(errs, "password", req.Password, va.policy.PasswordMinLen,
		fmt.Sprintf("Password must be at least %d characters", va.policy.PasswordMinLen))
	if req.ConfirmPassword != req.Password {
		errs = append(errs, FieldError{Field: "confirmPassword", Message: "Passwords do not match"})
	}
	return errs
}

// Login validates a login payload. Returns nil when valid.
func (va *Validator) Login(req dto.LoginRequest) Errors {
	var errs Errors
	errs = va.checkEmail(errs, req.Email)
	errs = va.checkMin(errs, "password", req.Password, va.policy.PasswordMinLen,
		fmt.Sprintf("Password must be at least %d characters", va.policy.PasswordMinLen))
	return errs
}

// Task validates a task create/edit payload. Returns nil when valid.
func (va *Validator) Task(req dto.TaskRequest) Errors {
	var errs Errors
	errs = va.checkMin(errs, "title", strings.TrimSpace(req.Title), va.policy.TitleMinLen,
		fmt.Sprintf("Title must be at least %d characters", va.policy.TitleMinLen))
	errs = va.checkMin(errs, "subject", strings.TrimSpace(req.Subject), va.policy.SubjectMinLen,
		fmt.Sprintf("Subject must be at least %d characters", va.policy.SubjectMinLen))
	tag := fmt.Sprintf("min=%d,max=%d", va.policy.PriorityMin, va.policy.PriorityMax)
	if err := va.v.Var(req.Priority, tag); err != nil {
		errs = append(errs, FieldError{
			Field:   "priority",
			Message: fmt.Sprintf("Priority must be between %d and %d", va.policy.PriorityMin, va.policy.PriorityMax),
		})
	}
	return errs
}

func (va *Validator) checkMin(errs Errors, field, value string, min int, msg string) Errors {
	if err := va.v.Var(value, fmt.Sprintf("required,min=%d", min)); err != nil {
		return append(errs, FieldError{Field: field, Message: msg})
	}
	return errs
}

func (va *Validator) checkEmail(errs Errors, email string) Errors {
	if err := va.v.Var(email, "required,email"); err != nil {
		return append(errs, FieldError{Field: "email", Message: "Invalid email"})
	}
	return errs
}
