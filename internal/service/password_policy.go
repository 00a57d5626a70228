package service

import (
	"unicode"
	"unicode/utf8"

	"github.com/scentlab/scentlab/internal/config"
)

// passwordPolicyError carries the i18n key and args of the failed rule so the
// handler can render a localized message. errors.Is matches ErrWeakPassword.
type passwordPolicyError struct {
	key  string
	args []interface{}
}

func (e passwordPolicyError) Error() string { return e.key }

func (e passwordPolicyError) Is(target error) bool { return target == ErrWeakPassword }

func (e passwordPolicyError) Key() string { return e.key }

func (e passwordPolicyError) Args() []interface{} { return e.args }

type passwordClasses struct {
	upper   bool
	lower   bool
	number  bool
	special bool
}

func classifyPassword(password string) passwordClasses {
	var c passwordClasses
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			c.upper = true
		case unicode.IsLower(r):
			c.lower = true
		case unicode.IsDigit(r):
			c.number = true
		default:
			c.special = true
		}
	}
	return c
}

func validatePassword(policy config.PasswordPolicyConfig, password string) error {
	if policy.MinLength > 0 && utf8.RuneCountInString(password) < policy.MinLength {
		return passwordPolicyError{key: "error.password_min_length", args: []interface{}{policy.MinLength}}
	}

	classes := classifyPassword(password)
	if policy.RequireUpper && !classes.upper {
		return passwordPolicyError{key: "error.password_require_upper"}
	}
	if policy.RequireLower && !classes.lower {
		return passwordPolicyError{key: "error.password_require_lower"}
	}
	if policy.RequireNumber && !classes.number {
		return passwordPolicyError{key: "error.password_require_number"}
	}
	if policy.RequireSpecial && !classes.special {
		return passwordPolicyError{key: "error.password_require_special"}
	}
	return nil
}
