package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/canvasgen/internal/canvas"
	apperrors "github.com/alexisbeaulieu97/canvasgen/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("component_kind", func(fl validator.FieldLevel) bool {
			_, err := canvas.ParseKind(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the shared validator instance.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// ValidateConfig performs schema validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return apperrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Tag() == "component_kind" {
			msg = fmt.Sprintf("%s: unknown component %q", field, ve.Value())
		}
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root struct from the namespace, leaving the
// YAML path, e.g. "editor.start_component".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.Join(parts, ".")
}
