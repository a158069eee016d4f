package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type registerInput struct {
	Username string  `json:"username" validate:"required,alpha_dash,min=3,max=50"`
	Email    string  `json:"email"    validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Role     string  `json:"role"     validate:"required,in=student|canteen_manager|admin|ngo"`
	Price    float64 `json:"price"    validate:"gt=0"`
}

func TestStructValid(t *testing.T) {
	errs := Struct(&registerInput{
		Username: "ravi_2024",
		Email:    "ravi@example.com",
		Password: "secret1",
		Role:     "student",
		Price:    49.50,
	})
	assert.False(t, HasErrors(errs), "expected no errors, got %v", errs)
}

func TestStructFailures(t *testing.T) {
	errs := Struct(&registerInput{
		Username: "r!",
		Email:    "not-an-email",
		Password: "abc",
		Role:     "visitor",
		Price:    0,
	})

	assert.True(t, HasErrors(errs))
	assert.Contains(t, errs, "username")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
	assert.Contains(t, errs, "role")
	assert.Contains(t, errs, "price")
}

func TestRoleInRuleIsCaseInsensitive(t *testing.T) {
	errs := Struct(&registerInput{
		Username: "admin",
		Email:    "a@b.co",
		Password: "secret1",
		Role:     "NGO",
		Price:    1,
	})
	assert.NotContains(t, errs, "role")
}
