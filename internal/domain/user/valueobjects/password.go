package valueobjects

import (
	"fmt"
	"unicode"
)

// Stable password policy messages. Handlers surface these verbatim, so
// changing them breaks API consumers that match on the text.
const (
	MsgPasswordTooShort    = "password must be at least 8 characters long"
	MsgPasswordTooLong     = "password must not exceed 72 characters (bcrypt limitation)"
	MsgPasswordNoUppercase = "password must contain at least one uppercase letter"
	MsgPasswordNoLowercase = "password must contain at least one lowercase letter"
	MsgPasswordNoDigit     = "password must contain at least one digit"
)

type Password struct {
	value string
}

// NewPassword validates the plain password against the account policy.
// Validation happens before any persistence work is attempted.
func NewPassword(plainPassword string) (*Password, error) {
	if err := validatePassword(plainPassword); err != nil {
		return nil, err
	}

	return &Password{value: plainPassword}, nil
}

func (p *Password) String() string {
	return p.value
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("%s", MsgPasswordTooShort)
	}

	if len(password) > 72 {
		return fmt.Errorf("%s", MsgPasswordTooLong)
	}

	var (
		hasUpper bool
		hasLower bool
		hasDigit bool
	)

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasDigit = true
		}
	}

	if !hasUpper {
		return fmt.Errorf("%s", MsgPasswordNoUppercase)
	}

	if !hasLower {
		return fmt.Errorf("%s", MsgPasswordNoLowercase)
	}

	if !hasDigit {
		return fmt.Errorf("%s", MsgPasswordNoDigit)
	}

	return nil
}
