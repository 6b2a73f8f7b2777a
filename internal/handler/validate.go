package handler

import (
	"math"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	// ratings come in half-star steps: 0.0, 0.5, ... 5.0
	_ = validate.RegisterValidation("halfstep", func(fl validator.FieldLevel) bool {
		v := fl.Field().Float() * 2
		return v == math.Trunc(v)
	})
}
