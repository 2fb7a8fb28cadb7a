package validation

import "fmt"

// PasswordMaxBytes is the longest password bcrypt accepts.
const PasswordMaxBytes = 72

// PasswordPolicy bounds the length of accepted passwords.
type PasswordPolicy struct {
	MinLength int
	MaxLength int
}

// EmailField is the rule list shared by login and registration.
func EmailField() *FieldRules {
	return Field("email").
		Exists("Email is required").
		NotEmpty("Email is empty").
		IsEmail("Email is invalid").
		Bail()
}

// PasswordField checks presence and length of the password.
func PasswordField(policy PasswordPolicy) *FieldRules {
	return Field("password").
		Exists("Password is required").
		NotEmpty("Password is empty").
		MinLength(policy.MinLength, fmt.Sprintf("Password requires at least %d characters", policy.MinLength)).
		MaxLength(policy.MaxLength, fmt.Sprintf("Password cannot be longer than %d characters", policy.MaxLength)).
		MaxBytes(PasswordMaxBytes, fmt.Sprintf("Password cannot be longer than %d bytes", PasswordMaxBytes)).
		Bail()
}

// PasswordConfirmationField checks that password_confirmation repeats password.
func PasswordConfirmationField() *FieldRules {
	return Field("password_confirmation").
		Exists("Password Confirmation is required").
		Equals("password", "Passwords must match").
		Bail()
}

// LoginChain validates POST /auth/login bodies.
func LoginChain(policy PasswordPolicy) *Chain {
	return NewChain(EmailField(), PasswordField(policy))
}

// UserCreationChain validates POST /users bodies.
func UserCreationChain(policy PasswordPolicy) *Chain {
	return NewChain(EmailField(), PasswordField(policy), PasswordConfirmationField())
}
