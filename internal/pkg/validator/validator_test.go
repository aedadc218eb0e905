package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMobile(t *testing.T) {
	assert.True(t, IsMobile("9999999999"))
	assert.False(t, IsMobile("999999999"))
	assert.False(t, IsMobile("99999999990"))
	assert.False(t, IsMobile("99999x9999"))
}

func TestIsStrongPassword(t *testing.T) {
	assert.True(t, IsStrongPassword("Secret1@"))
	assert.False(t, IsStrongPassword("Secret1"), "too short")
	assert.False(t, IsStrongPassword("secret1@"), "no upper-case")
	assert.False(t, IsStrongPassword("Secrets@"), "no digit")
	assert.False(t, IsStrongPassword("Secret12"), "no special")
	assert.False(t, IsStrongPassword("Secret 1@"), "whitespace")
}

func TestIsCardNumber(t *testing.T) {
	assert.True(t, IsCardNumber("4242 4242 4242 4242"))
	assert.True(t, IsCardNumber("4242424242424242"))
	assert.False(t, IsCardNumber("4242 4242 4242"))
	assert.False(t, IsCardNumber("4242 4242 4242 424a"))
}

type paymentForm struct {
	Card   string `validate:"required,cardnumber"`
	Expiry string `validate:"required,expiry"`
	CVC    string `validate:"required,cvc"`
}

func TestValidate_CustomTags(t *testing.T) {
	assert.Nil(t, Validate(paymentForm{Card: "4242 4242 4242 4242", Expiry: "12/30", CVC: "123"}))

	errs := Validate(paymentForm{Card: "4242", Expiry: "1230", CVC: "12"})
	assert.Equal(t, "cardnumber", errs["Card"])
	assert.Equal(t, "expiry", errs["Expiry"])
	assert.Equal(t, "cvc", errs["CVC"])
}
