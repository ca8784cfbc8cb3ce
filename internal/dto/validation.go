package dto

import (
	"github.com/SscSPs/procurement_accounting_app/internal/utils"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the custom binding tags on gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return utils.IsValidObjectID(fl.Field().String())
	})
}
