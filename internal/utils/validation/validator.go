package validation

import (
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Validator wraps the go-playground validator with the site's custom tags.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("abspath", func(fl validator.FieldLevel) bool {
		return IsAbsPath(fl.Field().String())
	})
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("redirect_target", func(fl validator.FieldLevel) bool {
		return IsRedirectTarget(fl.Field().String())
	})
	return &Validator{validate: v}
}

// ValidateStruct validates a struct using struct tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// IsAbsPath проверяет путь сайта: начинается с одного "/", без пробелов.
func IsAbsPath(p string) bool {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") {
		return false
	}
	return !strings.ContainsAny(p, " \t\r\n")
}

// IsRedirectTarget: путь сайта или абсолютный http(s) URL.
func IsRedirectTarget(s string) bool {
	if IsAbsPath(s) {
		return true
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// FormatValidationErrors converts validation errors to a user-friendly format
func FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		if err != nil {
			errs["_"] = err.Error()
		}
		return errs
	}
	for _, e := range validationErrs {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errs[field] = fmt.Sprintf("%s is required", field)
		case "max":
			errs[field] = fmt.Sprintf("%s must be at most %s characters", field, e.Param())
		case "gte":
			errs[field] = fmt.Sprintf("%s must be greater than or equal to %s", field, e.Param())
		case "uuid":
			errs[field] = fmt.Sprintf("%s must be an id", field)
		case "abspath":
			errs[field] = fmt.Sprintf("%s must start with \"/\"", field)
		case "slug":
			errs[field] = fmt.Sprintf("%s must be lowercase letters, digits and dashes", field)
		case "redirect_target":
			errs[field] = fmt.Sprintf("%s must be a site path or an http(s) URL", field)
		default:
			errs[field] = fmt.Sprintf("%s is invalid", field)
		}
	}
	return errs
}
