package http

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/aussiebroadwan/devconnector/pkg/httpx"
	"github.com/go-playground/validator/v10"
)

// dateLayouts are the accepted spellings of experience and education dates.
var dateLayouts = []string{time.DateOnly, time.RFC3339}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := parseDate(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}

	return v
}

func parseDate(s string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		t, perr := time.Parse(layout, strings.TrimSpace(s))
		if perr == nil {
			return t.UTC(), nil
		}
		err = perr
	}
	return time.Time{}, err
}

// parseOptionalDate returns nil for an empty string.
func parseOptionalDate(s string) *time.Time {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil
	}
	return &t
}

// validateBody checks req (a pointer to a request struct) and turns each
// failure into an error item. Messages come from the field's msg tag;
// fields tagged redact:"true" never echo their value back.
func validateBody(req any) []httpx.ErrorItem {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []httpx.ErrorItem{{Msg: err.Error(), Location: "body"}}
	}

	t := reflect.TypeOf(req)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	items := make([]httpx.ErrorItem, 0, len(verrs))
	seen := make(map[string]struct{}, len(verrs))
	for _, fe := range verrs {
		if _, dup := seen[fe.Field()]; dup {
			continue
		}
		seen[fe.Field()] = struct{}{}

		item := httpx.ErrorItem{
			Msg:      fe.Field() + " is invalid",
			Param:    fe.Field(),
			Location: "body",
		}

		if f, ok := t.FieldByName(fe.StructField()); ok {
			if msg := f.Tag.Get("msg"); msg != "" {
				item.Msg = msg
			}
			if f.Tag.Get("redact") != "true" {
				item.Value = plainValue(fe.Value())
			}
		}

		items = append(items, item)
	}
	return items
}

// plainValue dereferences pointers so optional fields echo their content,
// and drops nil ones.
func plainValue(v any) any {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}

// decodeAndValidate reads the JSON body into req and validates it, writing
// the 400 response itself on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := httpx.DecodeJSON(w, r, req); err != nil {
		httpx.WriteMsg(w, http.StatusBadRequest, MsgBadBody)
		return false
	}

	if items := validateBody(req); len(items) > 0 {
		httpx.WriteErrors(w, http.StatusBadRequest, items...)
		return false
	}
	return true
}
