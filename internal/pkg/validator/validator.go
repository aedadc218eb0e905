package validator

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	mobileRe = regexp.MustCompile(`^\d{10}$`)
	expiryRe = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvcRe    = regexp.MustCompile(`^\d{3}$`)
	timeRe   = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`)
	dateRe   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

const passwordSpecials = "@#$%^&+=!"

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("mobile10", func(fl validator.FieldLevel) bool {
		return IsMobile(fl.Field().String())
	})
	_ = validate.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})
	_ = validate.RegisterValidation("cardnumber", func(fl validator.FieldLevel) bool {
		return IsCardNumber(fl.Field().String())
	})
	_ = validate.RegisterValidation("expiry", func(fl validator.FieldLevel) bool {
		return IsExpiry(fl.Field().String())
	})
	_ = validate.RegisterValidation("cvc", func(fl validator.FieldLevel) bool {
		return IsCVC(fl.Field().String())
	})
	_ = validate.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return timeRe.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		return dateRe.MatchString(fl.Field().String())
	})
}

// Validate struct fields
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["_"] = err.Error()
		return errors
	}
	for _, err := range verrs {
		errors[err.Field()] = err.Tag()
	}
	return errors
}

// IsMobile reports whether s is a 10-digit mobile number.
func IsMobile(s string) bool {
	return mobileRe.MatchString(s)
}

// IsStrongPassword: at least 8 characters, one upper-case letter, one digit,
// one of @#$%^&+=! and no whitespace.
func IsStrongPassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	var upper, digit, special bool
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			return false
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	return upper && digit && special
}

// CleanCardNumber strips the grouping spaces the card input inserts.
func CleanCardNumber(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// IsCardNumber accepts exactly 16 digits once spaces are removed.
func IsCardNumber(s string) bool {
	cleaned := CleanCardNumber(s)
	if len(cleaned) != 16 {
		return false
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsExpiry reports whether s looks like MM/YY.
func IsExpiry(s string) bool {
	return expiryRe.MatchString(s)
}

func IsCVC(s string) bool {
	return cvcRe.MatchString(s)
}
