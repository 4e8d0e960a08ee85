package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pathewatch/pathewatch/internal/models"
)

// ValidateConfig performs validation on the GlobalConfig structure.
func ValidateConfig(cfg *GlobalConfig) error {
	validate := validator.New()

	// Register custom validation for known cinema names (case-insensitive)
	_ = validate.RegisterValidation("cinema", func(fl validator.FieldLevel) bool {
		_, err := models.ParseCinema(fl.Field().String())
		return err == nil
	})

	// Register custom validation for the DD-MM-YYYY dates the schedules
	// endpoint expects
	_ = validate.RegisterValidation("ddmmyyyy", func(fl validator.FieldLevel) bool {
		return isDDMMYYYY(fl.Field().String())
	})

	// Register custom validation for LogLevel
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		level := strings.ToLower(fl.Field().String())
		switch level {
		case "", "trace", "debug", "info", "warn", "error", "fatal", "panic": // Allow empty for omitempty
			return true
		default:
			return false
		}
	})

	// Register custom validation for LogFormat
	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		format := strings.ToLower(fl.Field().String())
		switch format {
		case "", "console", "text", "json": // Allow empty for omitempty
			return true
		default:
			return false
		}
	})

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		validationErrorMessages := make([]string, 0, len(errs))
		for _, e := range errs {
			fieldName := strings.TrimPrefix(e.StructNamespace(), "GlobalConfig.")
			msg := fmt.Sprintf("Validation failed for '%s': rule '%s'", fieldName, e.Tag())
			if e.Param() != "" {
				msg += fmt.Sprintf(" (expected: %s)", e.Param())
			}
			// The webhook URL embeds a secret token; keep its value out
			// of error output.
			if e.Value() != nil && e.Value() != "" && e.Field() != "WebhookURL" {
				msg += fmt.Sprintf(", actual: '%v'", e.Value())
			}
			validationErrorMessages = append(validationErrorMessages, msg)
		}
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(validationErrorMessages, "\n  "))
	}
	return fmt.Errorf("configuration validation error: %w", err)
}

// isDDMMYYYY reports whether value is a well-formed DD-MM-YYYY calendar
// date. The round-trip keeps zero-padding strict and rejects impossible
// dates like 31-02-2021.
func isDDMMYYYY(value string) bool {
	parsed, err := time.Parse("02-01-2006", value)
	if err != nil {
		return false
	}
	return parsed.Format("02-01-2006") == value
}
