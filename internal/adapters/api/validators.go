package api

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"weatherblock.app/pkg/validation"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// registerValidators adds the `location` and `units` tags to gin's
// validator engine. Safe to call more than once.
func registerValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if registerErr = v.RegisterValidation("location", validateLocation); registerErr != nil {
			return
		}
		registerErr = v.RegisterValidation("units", validateUnits)
	})
	return registerErr
}

func validateLocation(fl validator.FieldLevel) bool {
	return validation.IsValidLocationSegment(fl.Field().String())
}

func validateUnits(fl validator.FieldLevel) bool {
	return validation.IsValidUnits(fl.Field().String())
}
