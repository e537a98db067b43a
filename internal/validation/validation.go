package validation

import (
	"fmt"
	"reflect"
	"strings"

	"avrental/pkg/metadata"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterEnumValidators adds the enum tags (office, asset_status,
// quote_status, category, vendor_category) to gin's binding engine.
func RegisterEnumValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
	}
	return Register(v)
}

func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})

	validators := map[string]validator.Func{
		"office": func(fl validator.FieldLevel) bool {
			_, err := metadata.NewOffice(fl.Field().String())
			return err == nil
		},
		"asset_status": func(fl validator.FieldLevel) bool {
			_, err := metadata.NewAssetStatus(fl.Field().String())
			return err == nil
		},
		"quote_status": func(fl validator.FieldLevel) bool {
			_, err := metadata.NewQuoteStatus(fl.Field().String())
			return err == nil
		},
		"category": func(fl validator.FieldLevel) bool {
			_, err := metadata.NewCategory(fl.Field().String())
			return err == nil
		},
		"vendor_category": func(fl validator.FieldLevel) bool {
			_, err := metadata.NewVendorCategory(fl.Field().String())
			return err == nil
		},
	}

	for tag, fn := range validators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s validator: %w", tag, err)
		}
	}
	return nil
}

// Describe flattens validator errors into field -> message pairs for the
// "details" part of an error response.
func Describe(err error) interface{} {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	details := map[string]string{}
	for _, fieldErr := range errs {
		details[fieldErr.Field()] = message(fieldErr)
	}
	return details
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "url":
		return "must be a valid url"
	case "office":
		return "must be one of dallas, miami, phoenix, minneapolis"
	case "asset_status":
		return "must be one of available, rented, maintenance"
	case "quote_status":
		return "must be one of draft, sent, approved, rejected"
	case "category":
		return "is not a known category"
	case "vendor_category":
		return "must be one of equipment, labor, laborAndEquipment, transportation, miscellaneous"
	case "email":
		return "must be a valid email address"
	}
	return "is invalid"
}
