package handler

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

func formatValidationErrors(err error) interface{} {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		errors := make(map[string]string)
		for _, e := range validationErrors {
			errors[fieldPath(e)] = e.Tag()
		}
		return errors
	}
	return nil
}

// fieldPath drops the root struct name so batch items read as Items[0].StyleLevel
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}
