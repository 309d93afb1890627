package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// report json names instead of Go field names
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
		_ = v.RegisterValidation("notblank", validators.NotBlank)
		_ = v.RegisterValidation("maxbytes", maxBytes)
	}
}

// maxBytes limits the encoded length of a string; bcrypt reads at most 72 bytes.
func maxBytes(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= n
}

// bindJSON decodes and validates the body. On failure it writes the response and returns false.
func bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if errors.Is(err, io.EOF) {
		// empty body: report missing fields rather than a decode error
		err = binding.Validator.ValidateStruct(req)
	}
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		respondValidation(c, http.StatusUnprocessableEntity, fieldErrors(verrs))
		return false
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		respondValidation(c, http.StatusUnprocessableEntity, FieldErrors{
			typeErr.Field: {fmt.Sprintf("The %s field must be of type %s.", typeErr.Field, jsonType(typeErr.Type))},
		})
		return false
	}

	respondError(c, http.StatusBadRequest, "bad request")
	return false
}

func fieldErrors(verrs validator.ValidationErrors) FieldErrors {
	out := FieldErrors{}
	for _, fe := range verrs {
		field := fe.Field()
		out[field] = append(out[field], message(field, fe))
	}
	return out
}

func message(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", field)
	case "min":
		return fmt.Sprintf("The %s field must be at least %s characters.", field, fe.Param())
	case "max":
		return fmt.Sprintf("The %s field must not be greater than %s characters.", field, fe.Param())
	case "maxbytes":
		return fmt.Sprintf("The %s field must not be greater than %s bytes.", field, fe.Param())
	case "eqfield":
		return fmt.Sprintf("The %s field must match %s.", field, strings.ToLower(fe.Param()))
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}

func jsonType(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Pointer:
		return jsonType(t.Elem())
	default:
		return t.Kind().String()
	}
}

// pathID parses a positive numeric path parameter.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func invalidSelection(c *gin.Context, field, label string) {
	respondValidation(c, http.StatusBadRequest, FieldErrors{
		field: {fmt.Sprintf("The selected %s is invalid.", label)},
	})
}
