package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=8"`
	Age      int      `json:"age" validate:"omitempty,min=16"`
	Tags     []string `json:"tags" validate:"max=2"`
	Plan     string   `json:"plan" validate:"omitempty,oneof=free premium"`
}

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, Struct(&signup{Email: "a@example.com", Password: "longenough"}))
}

func TestStruct_FieldErrors(t *testing.T) {
	err := Struct(signup{Email: "nope", Password: "short", Age: 12, Tags: []string{"a", "b", "c"}, Plan: "gold"})
	require.Error(t, err)

	var verr *Error
	require.ErrorAs(t, err, &verr)

	assert.Equal(t, map[string]string{
		"email":    "must be a valid email address",
		"password": "must be at least 8 characters",
		"age":      "must be at least 16",
		"tags":     "must have at most 2 entries",
		"plan":     "must be one of: free, premium",
	}, verr.Messages())
	assert.Contains(t, verr.Error(), "email must be a valid email address")
}

func TestStruct_Nil(t *testing.T) {
	var verr *Error
	require.ErrorAs(t, Struct(nil), &verr)
	assert.Equal(t, "request", verr.Fields[0].Field)
}
