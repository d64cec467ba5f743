package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// calendarMonth validates the wire form of a billing period month: 1-12.
func calendarMonth(fl validator.FieldLevel) bool {
	month := fl.Field().Int()
	return month >= 1 && month <= 12
}

// RegisterCustomValidations installs the custom binding validators on gin's
// validator engine. Called once at startup, before any request is served.
func RegisterCustomValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("calmonth", calendarMonth)
}
