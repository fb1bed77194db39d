package handlers

import (
	"encoding/json"
	"fmt"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/usecase"
	"github.com/kuntarvishnuprasad41/sparelab-epc/pkg"
	"github.com/kuntarvishnuprasad41/sparelab-epc/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

const (
	codeValidation    = "VALIDATION_ERROR"
	codeJobCardAbsent = "JOB_CARD_NOT_FOUND"
	codePartAbsent    = "PART_NOT_FOUND"
	codeStateConflict = "STATE_CONFLICT"
	codeInternal      = "INTERNAL_ERROR"
)

var (
	errBodyRequired = pkg.NewDomainErrorSimple(codeValidation, "Request body is required", http.StatusBadRequest)
	errInvalidJSON  = pkg.NewDomainErrorSimple(codeValidation, "Request body must be valid JSON", http.StatusBadRequest)
	errBadRequest   = pkg.NewDomainErrorSimple(codeValidation, "Invalid request", http.StatusBadRequest)
)

var registerValidatorsOnce sync.Once

// RegisterValidators makes gin's validator report JSON field names and adds
// the notblank rule used by request DTOs.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
			panic(fmt.Sprintf("register notblank validator: %v", err))
		}
	})
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// mapError translates use-case errors into the HTTP error contract.
func mapError(err error) *pkg.AppError {
	var vErr *usecase.ValidationError
	switch {
	case errors.As(err, &vErr):
		appErr := pkg.NewDomainErrorSimple(codeValidation, vErr.Error(), http.StatusBadRequest)
		if vErr.Field != "" {
			appErr = appErr.WithDetails(map[string]any{"field": vErr.Field})
		}
		return appErr
	case errors.Is(err, usecase.ErrInvalidJobCardID), errors.Is(err, usecase.ErrInvalidPartID):
		return errBadRequest
	case errors.Is(err, usecase.ErrJobCardNotFound):
		return pkg.NewDomainErrorSimple(codeJobCardAbsent, "Job card not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPartNotFound):
		return pkg.NewDomainErrorSimple(codePartAbsent, "Part not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTransitionNotAllowed):
		return pkg.NewDomainError(codeStateConflict, err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrMissingUpload):
		return pkg.NewDomainErrorSimple(codeValidation, "File is required", http.StatusBadRequest)
	default:
		return pkg.NewDomainError(codeInternal, "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// mapBindingError names the offending field when the body does not decode
// or fails a binding rule.
func mapBindingError(err error) *pkg.AppError {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		fieldErrs validator.ValidationErrors
	)
	switch {
	case errors.As(err, &fieldErrs) && len(fieldErrs) > 0:
		field := fieldPath(fieldErrs[0].Namespace())
		return pkg.NewDomainErrorSimple(codeValidation, field+" is required", http.StatusBadRequest).
			WithDetails(map[string]any{"field": field})
	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			return errBodyRequired
		}
		return pkg.NewDomainErrorSimple(codeValidation, typeErr.Field+" has an invalid type", http.StatusBadRequest).
			WithDetails(map[string]any{"field": typeErr.Field})
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return errInvalidJSON
	case errors.Is(err, io.EOF):
		return errBodyRequired
	default:
		return errBadRequest
	}
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func renderError(c *gin.Context, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.FromContext(c.Request.Context()).Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func renderAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
