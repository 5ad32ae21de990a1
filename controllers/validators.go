package controllers

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/suranga-printers/print-shop-api/models"
)

// RegisterValidators installs the custom binding tags used by request structs.
// It must run before the router serves requests.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}

	return v.RegisterValidation("quote_status", func(fl validator.FieldLevel) bool {
		return models.QuoteStatus(fl.Field().String()).Valid()
	})
}
