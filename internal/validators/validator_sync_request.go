// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-press-sync/models"
)

// objectKindPattern matches sanitized content type keys: lowercase
// alphanumerics, dashes and underscores.
var objectKindPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// SyncRequestValidator validates the requests of the page-driving API with
// go-playground/validator struct tags.
type SyncRequestValidator struct {
	validate *validator.Validate
}

// NewSyncRequestValidator returns a [Validator] for [models.SyncPageRequest],
// [models.CountRequest] and [models.ConnectionStatusRequest].
func NewSyncRequestValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("objectkind", func(fl validator.FieldLevel) bool {
		return objectKindPattern.MatchString(fl.Field().String())
	})

	return &SyncRequestValidator{validate: validate}
}

// Validate implements [Validator]. When fields are given only those struct
// fields are checked.
func (v *SyncRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch obj.(type) {
	case models.SyncPageRequest, *models.SyncPageRequest,
		models.CountRequest, *models.CountRequest,
		models.ConnectionStatusRequest, *models.ConnectionStatusRequest:
		return v.validateStruct(ctx, obj, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SyncRequestValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	fieldErr := validationErrors[0]
	switch fieldErr.StructField() {
	case "ObjectsToSync":
		return fmt.Errorf("%w: %q fails %q", ErrInvalidKind, fieldErr.Value(), fieldErr.Tag())
	case "Page":
		return fmt.Errorf("%w: got %v", ErrInvalidPage, fieldErr.Value())
	case "URL":
		return fmt.Errorf("%w: %q", ErrInvalidURL, fieldErr.Value())
	default:
		return fmt.Errorf("%w: %s fails %q", ErrInvalidRequest, fieldErr.Field(), fieldErr.Tag())
	}
}
