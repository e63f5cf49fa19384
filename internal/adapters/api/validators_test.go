package api

import (
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindingValidator(t *testing.T) *validator.Validate {
	t.Helper()
	require.NoError(t, registerValidators())
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	return v
}

func TestRegisterValidators_Idempotent(t *testing.T) {
	require.NoError(t, registerValidators())
	require.NoError(t, registerValidators())
}

func TestLocationTag(t *testing.T) {
	v := bindingValidator(t)

	tests := []struct {
		location string
		valid    bool
	}{
		{"London", true},
		{"New-York", true},
		{"90210", true},
		{"New York", false},
		{"London,GB", false},
		{"", false},
		{strings.Repeat("a", 100), true},
		{strings.Repeat("a", 101), false},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			err := v.Struct(&locationPath{Location: tt.location})
			assert.Equal(t, tt.valid, err == nil)
		})
	}
}

func TestUnitsTag(t *testing.T) {
	v := bindingValidator(t)

	assert.NoError(t, v.Struct(&unitsQuery{Units: "metric"}))
	assert.NoError(t, v.Struct(&unitsQuery{Units: "imperial"}))
	assert.Error(t, v.Struct(&unitsQuery{Units: "kelvin"}))
	assert.Error(t, v.Struct(&unitsQuery{Units: ""}))
}
