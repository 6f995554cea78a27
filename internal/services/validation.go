package services

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"lapak/internal/apperrors"

	"github.com/go-playground/validator/v10"
)

// Leading + optional, then 1-16 digits, first digit nonzero.
var phoneRegexp = regexp.MustCompile(`^\+?[1-9][0-9]{0,15}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for an empty tag name, so the error is ignored.
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegexp.MatchString(fl.Field().String())
	})
	// Report violations under the json field names the client sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return strings.ToLower(fld.Name)
		}
		return name
	})
	return v
}

// validateStruct runs struct-tag validation and converts violations into a
// ValidationError carrying one message per field.
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation: %w", err)
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return apperrors.NewValidationError(fields)
}

// fieldMessage translates a single violation into the message the API
// contract promises for that field.
func fieldMessage(fe validator.FieldError) string {
	switch fe.StructNamespace() {
	case "User.Name":
		if fe.Tag() == "required" {
			return "Name is required"
		}
		return "Name cannot be more than 100 characters"
	case "User.Email":
		return "Please enter a valid email"
	case "User.Password":
		return "Password must be at least 6 characters long"
	case "Shop.Name":
		if fe.Tag() == "required" {
			return "Shop name is required"
		}
		return "Shop name cannot be more than 100 characters"
	case "Shop.Address":
		return "Address cannot be more than 200 characters"
	case "Shop.Phone":
		return "Please enter a valid phone number"
	case "Shop.Email":
		return "Please enter a valid email"
	case "Product.Name":
		if fe.Tag() == "required" {
			return "Product name is required"
		}
		return "Product name cannot be more than 100 characters"
	case "Product.Price":
		return "Price must be a positive number"
	case "Product.Category":
		if fe.Tag() == "required" {
			return "Category is required"
		}
		return "Category cannot be more than 50 characters"
	case "Product.Stock":
		return "Stock must be a non-negative integer"
	case "Shop.Description", "Product.Description":
		return "Description cannot be more than 500 characters"
	}
	return fmt.Sprintf("Field '%s' failed on the '%s' rule", fe.Field(), fe.Tag())
}
