package validator

import (
	"log"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Accepts international numbers with an optional leading +, 10 to 15 digits.
var phoneNumberPattern = regexp.MustCompile(`^\+?[1-9]\d{9,14}$`)

func RegisterGinValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		err := v.RegisterValidation("phonenumber", phoneNumberValidator)
		if err != nil {
			log.Fatal("register phonenumber validator failed")
		}
	}
}

// IsPhoneNumberValid reports whether phoneNumber has the recognized shape.
// Shared between the gin binding tag and service-level validation.
func IsPhoneNumberValid(phoneNumber string) bool {
	return phoneNumberPattern.MatchString(phoneNumber)
}

var phoneNumberValidator validator.Func = func(fl validator.FieldLevel) bool {
	return IsPhoneNumberValid(fl.Field().String())
}
