// Package validation holds the request shapes accepted by the API and turns
// binding failures into field-level domain errors.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// Register configures gin's validator engine: field names are reported by
// their JSON name and struct-level rules are installed. Safe to call repeatedly.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonName)
		v.RegisterStructValidation(validateBookingTarget, BookingCreate{})
	})
}

var timeType = reflect.TypeOf(time.Time{})

// Bind decodes a create shape from the request body.
func Bind(c *gin.Context, obj any) error {
	Register()
	if err := c.ShouldBindBodyWith(obj, binding.JSON); err != nil {
		return translateBody(c, obj, err)
	}
	return nil
}

// BindPatch decodes an update shape. An empty body is an empty patch.
func BindPatch(c *gin.Context, obj any) error {
	Register()
	if err := c.ShouldBindBodyWith(obj, binding.JSON); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return translateBody(c, obj, err)
	}
	return nil
}

// translateBody reports an unparsable timestamp under its JSON key. The
// decoder's own error does not say which key held it.
func translateBody(c *gin.Context, obj any, err error) error {
	if raw, ok := c.Get(gin.BodyBytesKey); ok {
		if body, ok := raw.([]byte); ok {
			if field := badTimestamp(obj, body); field != "" {
				return domain.NewValidationError(field, "must be an RFC 3339 timestamp")
			}
		}
	}
	return Translate(err)
}

// badTimestamp returns the JSON name of the first time field of obj whose
// value in body does not decode as a timestamp.
func badTimestamp(obj any, body []byte) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return ""
	}

	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return ""
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		ft := f.Type
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if ft != timeType {
			continue
		}
		name := jsonName(f)
		value, ok := fields[name]
		if !ok {
			continue
		}
		var ts time.Time
		if err := json.Unmarshal(value, &ts); err != nil {
			return name
		}
	}
	return ""
}

// Translate converts decoder and validator errors into *domain.ValidationError.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return domain.NewValidationError(fe.Field(), message(fe))
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return domain.NewValidationError("body", "must be a JSON object")
		}
		return domain.NewValidationError(typeErr.Field, "must be of type "+jsonKind(typeErr.Type))
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return domain.NewValidationError("body", "malformed JSON")
	}

	return domain.NewValidationError("body", err.Error())
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "excluded":
		return "must not be set for this booking type"
	}
	return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
}

// jsonKind names t the way a JSON client would see it.
func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	}
	return "object"
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}
