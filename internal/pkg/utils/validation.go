package utils

import (
	"cfs-service/internal/pkg/cfs"
	"reflect"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("cfs_field", validateCFSField)
	validate.RegisterValidation("cfs_value", validateCFSValue)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateCFSField(fl validator.FieldLevel) bool {
	return cfs.Field(fl.Field().String()).IsKnown()
}

// validateCFSValue checks the value against the field named by the tag
// parameter, e.g. `validate:"cfs_value=Field"`.
func validateCFSValue(fl validator.FieldLevel) bool {
	fieldName, kind, _, found := fl.GetStructFieldOKAdvanced2(fl.Parent(), fl.Param())
	if !found || kind != reflect.String {
		return false
	}
	return cfs.ValidateValue(cfs.Field(fieldName.String()), fl.Field().String()) == nil
}
