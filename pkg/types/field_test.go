package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldZeroValueIsAbsent(t *testing.T) {
	var f Field[string]
	assert.False(t, f.IsSet())

	v, ok := f.Get()
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestFieldSetWithZeroValueIsPresent(t *testing.T) {
	f := Set("")
	assert.True(t, f.IsSet())

	v, ok := f.Get()
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestCustomerPatchApply(t *testing.T) {
	c := Customer{
		ID:       "C-001001",
		Name:     "Asha Verma",
		Phone:    "98100 00000",
		AltPhone: "011-4000000",
		Email:    "asha@example.com",
	}

	patch := CustomerPatch{
		Phone:    Set("98100 11111"),
		AltPhone: Set(""), // deliberately cleared
	}
	patch.Apply(&c)

	assert.Equal(t, "98100 11111", c.Phone)
	assert.Equal(t, "", c.AltPhone)
	assert.Equal(t, "Asha Verma", c.Name, "omitted field untouched")
	assert.Equal(t, "asha@example.com", c.Email, "omitted field untouched")
}
