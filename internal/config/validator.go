package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	shadeuierrors "github.com/jimmyps/shadeui/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	fieldKeyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)
)

// seriesTypesByKind mirrors the composition rules so definition files fail
// fast with a field path instead of waiting for the composition pass.
var seriesTypesByKind = map[string]map[string]bool{
	"line":     {"line": true},
	"area":     {"area": true},
	"bar":      {"bar": true},
	"pie":      {"pie": true},
	"scatter":  {"scatter": true},
	"radar":    {"radar": true},
	"composed": {"line": true, "area": true, "bar": true},
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("field_key", func(fl validator.FieldLevel) bool {
			return fieldKeyPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateDefinition performs schema and cross-field validation on a chart
// definition.
func ValidateDefinition(def *Definition) error {
	if def == nil {
		return shadeuierrors.NewValidationError("definition", "definition is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(def); err != nil {
		return convertValidationError(err)
	}

	for i, s := range def.Series {
		if err := validateSeries(def, s, i); err != nil {
			return err
		}
	}

	return nil
}

func validateSeries(def *Definition, s SeriesConfig, index int) error {
	field := func(name string) string {
		return fmt.Sprintf("series[%d].%s", index, name)
	}

	if allowed := seriesTypesByKind[def.Kind]; !allowed[s.Type] {
		return shadeuierrors.NewValidationError(field("type"),
			fmt.Sprintf("%s series is not permitted inside a %s chart", s.Type, def.Kind), nil)
	}

	switch s.Type {
	case "line", "area", "bar", "radar":
		if s.DataKey == "" {
			return shadeuierrors.NewValidationError(field("data_key"), "data_key is required", nil)
		}
	case "pie":
		if s.DataKey == "" {
			return shadeuierrors.NewValidationError(field("data_key"), "data_key is required", nil)
		}
		if s.NameKey == "" {
			return shadeuierrors.NewValidationError(field("name_key"), "name_key is required", nil)
		}
	case "scatter":
		if s.DataKey != "" {
			return shadeuierrors.NewValidationError(field("data_key"),
				"scatter series derive coordinates from the axis bindings; data_key is not accepted", nil)
		}
	}

	if s.Fill != nil && s.Fill.Gradient != nil && s.Fill.Color != "" {
		return shadeuierrors.NewValidationError(field("fill"),
			"fill declares both a solid color and a gradient; pick one", nil)
	}

	return nil
}

func convertValidationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return shadeuierrors.NewValidationError("definition", err.Error(), err)
	}

	first := errs[0]
	field := strings.TrimPrefix(first.Namespace(), "Definition.")
	message := fmt.Sprintf("failed %q validation", first.Tag())
	if first.Param() != "" {
		message = fmt.Sprintf("failed %q=%s validation", first.Tag(), first.Param())
	}
	return shadeuierrors.NewValidationError(field, message, err)
}
