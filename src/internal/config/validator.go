package config

import (
	"errors"
	"fmt"
	"net"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/valyala/fasttemplate"

	"github.com/maksimkurb/ioc-diff/src/internal/addrspace"
)

var (
	listNameRegexp = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)
)

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "min":
		return fmt.Sprintf("must be >= %s", e.Param())
	case "max":
		return fmt.Sprintf("must be <= %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "url":
		return "must be a valid URL"
	case "list_name":
		return "must start with a lowercase letter and consist only of [a-z0-9_-]"
	case "range_style":
		return "must be one of: auto dash cidr"
	case "line_template":
		return "must be a valid template containing {{indicator}}"
	case "address_token":
		return "must be an IPv4 address, CIDR or range"
	case "hostport_or_empty":
		return "must be in format 'host:port' or empty"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// ValidationError represents a single validation error with context
type ValidationError struct {
	ItemName  string // For lists: the name of the list (e.g., "feed_a")
	FieldPath string // Dot-notation field path (e.g., "general.range_style", "list.0.url")
	Message   string // Human-readable error message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		if err.ItemName != "" {
			sb.WriteString(fmt.Sprintf("  %d. [%s] %s: %s\n", i+1, err.ItemName, err.FieldPath, err.Message))
		} else {
			sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
		}
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("hostport_or_empty", validateHostPortOrEmpty); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("list_name", validateListName); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("range_style", validateRangeStyle); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("line_template", validateLineTemplate); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("address_token", validateAddressToken); err != nil {
		panic(err)
	}

	// Report field names from the "toml" tag, falling back to "json" for API requests
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	if c.General == nil {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "general",
			Message:   "configuration must contain 'general' section",
		})
		return validationErrors
	}

	validationErrors = append(validationErrors, ValidateStruct(c.General, "general", "")...)

	if c.Server != nil {
		validationErrors = append(validationErrors, ValidateStruct(c.Server, "server", "")...)
	}

	validationErrors = append(validationErrors, c.validateLists()...)

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

func (c *Config) validateLists() ValidationErrors {
	var validationErrors ValidationErrors

	seenNames := make(map[string]bool)

	for i, list := range c.Lists {
		itemName := list.ListName
		if itemName == "" {
			itemName = fmt.Sprintf("list[%d]", i)
		}

		validationErrors = append(validationErrors, ValidateStruct(list, fmt.Sprintf("list.%d", i), itemName)...)

		if seenNames[list.ListName] {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: "list_name",
				Message:   fmt.Sprintf("duplicate list name: %s", list.ListName),
			})
		}
		seenNames[list.ListName] = true

		sources := 0
		if list.URL != "" {
			sources++
		}
		if list.File != "" {
			sources++
		}
		if len(list.Hosts) > 0 {
			sources++
		}
		if sources != 1 {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: fmt.Sprintf("list.%d", i),
				Message:   "exactly one of 'url', 'file' or 'hosts' must be set",
			})
		}
	}

	return validationErrors
}

// ValidateStruct runs the struct tag validators on s and prefixes every
// reported field with fieldPrefix.
func ValidateStruct(s interface{}, fieldPrefix string, itemName string) ValidationErrors {
	if err := validate.Struct(s); err != nil {
		return convertValidatorErrors(err, fieldPrefix, itemName)
	}
	return nil
}

func convertValidatorErrors(err error, fieldPrefix string, itemName string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				if fieldPrefix != "" {
					fieldPath = fieldPrefix + "." + e.Field()
				} else {
					fieldPath = e.Field()
				}
			}

			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: fieldPath,
				Message:   getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

// Custom validator: host:port format or empty
func validateHostPortOrEmpty(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, _, err := net.SplitHostPort(value)
	return err == nil
}

func validateListName(fl validator.FieldLevel) bool {
	return listNameRegexp.MatchString(fl.Field().String())
}

// Custom validator: empty string means the default style
func validateRangeStyle(fl validator.FieldLevel) bool {
	_, err := addrspace.ParseRangeStyle(fl.Field().String())
	return err == nil
}

// Custom validator: empty string means the default template
func validateLineTemplate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	if _, err := fasttemplate.NewTemplate(value, "{{", "}}"); err != nil {
		return false
	}
	return strings.Contains(value, "{{"+TemplateTagIndicator+"}}")
}

func validateAddressToken(fl validator.FieldLevel) bool {
	return addrspace.New().AddToken(fl.Field().String()) == nil
}
