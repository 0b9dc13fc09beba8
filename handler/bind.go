package handler

import (
	"NoteManager/pkg/response"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// bindError 把 gin 绑定错误转换为字段级错误
func bindError(err error) error {
	ve := response.NewValidationError()

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		ve.Add("non_field_errors", "A valid integer is required.")
		return ve
	}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "min":
			ve.Add(field, fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param()))
		case "max":
			ve.Add(field, fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param()))
		default:
			ve.Add(field, "Invalid value.")
		}
	}
	return ve
}
