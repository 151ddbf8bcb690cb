package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/inkatravel-api/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	mustRegister("tour_category", oneOf(domain.ValidTourCategories()))
	mustRegister("tour_difficulty", oneOf(domain.ValidDifficulties()))
	mustRegister("package_type", oneOf(domain.ValidPackageTypes()))
	mustRegister("service_type", oneOf(domain.ValidServiceTypes()))
	mustRegister("weekday", func(fl validator.FieldLevel) bool {
		return domain.IsValidWeekday(fl.Field().String())
	})
	mustRegister("product_type", func(fl validator.FieldLevel) bool {
		return domain.IsValidProductType(fl.Field().String())
	})
	mustRegister("ui_language", func(fl validator.FieldLevel) bool {
		return domain.IsValidUILanguage(fl.Field().String())
	})
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func oneOf(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		for _, a := range allowed {
			if v == a {
				return true
			}
		}
		return false
	}
}

// Validate runs struct-tag validation on a DTO.
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator exposes the shared validator for custom registrations.
func GetValidator() *validator.Validate {
	return validate
}
