package validators

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-pleasure-utils/models"
)

const (
	FieldScope     = "scope"
	FieldOutput    = "output"
	FieldDirectory = "directory"
	FieldOut       = "out"
	FieldFormat    = "format"
	FieldExclude   = "exclude"
)

var allowedOutputs = []models.OutputFormat{
	models.OutputYAML,
	models.OutputJSON,
	models.OutputText,
}

var allowedFormats = []string{"md", "html"}

type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ShowConfigRequest:
		return v.validateShowConfig(ctx, value, fields...)
	case *models.ShowConfigRequest:
		return v.validateShowConfig(ctx, *value, fields...)

	case models.BuildMarkdownRequest:
		return v.validateBuildMarkdown(ctx, value, fields...)
	case *models.BuildMarkdownRequest:
		return v.validateBuildMarkdown(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isValidOutput(o models.OutputFormat) bool {
	for _, allowed := range allowedOutputs {
		if o == allowed {
			return true
		}
	}
	return false
}

// isValidScope accepts the root scope and dot paths without empty segments.
func isValidScope(scope string) bool {
	if scope == "" {
		return true
	}
	for _, segment := range strings.Split(scope, ".") {
		if strings.TrimSpace(segment) == "" {
			return false
		}
	}
	return true
}

func (v *RequestValidator) validateShowConfig(ctx context.Context, request models.ShowConfigRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldScope, FieldOutput}
	}

	for _, f := range fields {
		switch f {
		case FieldScope:
			if !isValidScope(request.Scope) {
				return fmt.Errorf("%w: %q", ErrInvalidScope, request.Scope)
			}
		case FieldOutput:
			if !isValidOutput(request.Output) {
				return fmt.Errorf("%w: %q", ErrInvalidOutput, request.Output)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateBuildMarkdown(ctx context.Context, request models.BuildMarkdownRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDirectory, FieldOut, FieldFormat, FieldExclude}
	}

	for _, f := range fields {
		switch f {
		case FieldDirectory:
			info, err := os.Stat(request.Directory)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidDirectory, err)
			}
			if !info.IsDir() {
				return fmt.Errorf("%w: %s is not a directory", ErrInvalidDirectory, request.Directory)
			}
		case FieldOut:
			if request.Out != "" && samePath(request.Out, request.Directory) {
				return ErrOutIsSource
			}
		case FieldFormat:
			valid := request.Format == ""
			for _, allowed := range allowedFormats {
				if strings.EqualFold(request.Format, allowed) {
					valid = true
				}
			}
			if !valid {
				return fmt.Errorf("%w: %q", ErrInvalidFormat, request.Format)
			}
		case FieldExclude:
			for i, pattern := range request.Exclude {
				if strings.TrimSpace(pattern) == "" {
					return fmt.Errorf("%w at index %d", ErrInvalidExclude, i)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}
