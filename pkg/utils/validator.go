package utils

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"mobileHospital/domain"

	"github.com/go-playground/validator/v10"
)

// Indian mobile subscriber number without country code.
var phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// NewValidator returns a validator that reports json field names and knows the
// shop tags: in_mobile, condition and category.
func NewValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("in_mobile", func(fl validator.FieldLevel) bool {
		return ValidPhone(fl.Field().String())
	})
	_ = v.RegisterValidation("condition", func(fl validator.FieldLevel) bool {
		return domain.Condition(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return domain.Category(fl.Field().String()).Valid()
	})

	return v
}

// ToValidationError converts the first validator failure into a
// domain.ValidationError. Other errors pass through.
func ToValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	return domain.NewValidationError(fe.Field(), reason(fe))
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "in_mobile":
		return "must be a valid 10-digit Indian phone number"
	case "condition":
		return "must be one of Like New, Good, Average"
	case "category":
		return "must be one of Mobile, Accessories"
	case "gt":
		return "must be greater than " + fe.Param()
	case "min":
		return "must be at least " + fe.Param() + " characters"
	default:
		return "failed " + fe.Tag() + " check"
	}
}
