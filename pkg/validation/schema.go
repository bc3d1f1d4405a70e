package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/gorilla/mux"
	jschema "github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"

	"moviesexplorer/pkg/apperr"
)

const maxBodyBytes = 1 << 20

// Schema is the request shape a route accepts, compiled to JSON Schema.
// Unknown keys are rejected. Without body fields the body is not read.
type Schema struct {
	body   *jschema.Schema
	params *jschema.Schema
	order  map[string]int
}

// Compile builds the body and params schemas of a route. Violations are
// reported in field order.
func Compile(name string, body, params []Field) (*Schema, error) {
	s := &Schema{order: make(map[string]int)}
	for i, f := range append(append([]Field{}, params...), body...) {
		s.order[f.Name] = i
	}

	var err error
	if body != nil {
		if s.body, err = compileObject(name+"-body.json", body); err != nil {
			return nil, err
		}
	}
	if params != nil {
		if s.params, err = compileObject(name+"-params.json", params); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func MustCompile(name string, body, params []Field) *Schema {
	s, err := Compile(name, body, params)
	if err != nil {
		panic(err)
	}
	return s
}

func compileObject(url string, fields []Field) (*jschema.Schema, error) {
	properties := make(map[string]any, len(fields))
	required := make([]string, 0, len(fields))
	for _, f := range fields {
		properties[f.Name] = f.Value
		if f.Required {
			required = append(required, f.Name)
		}
	}

	raw, err := json.Marshal(map[string]any{
		"type":                 "object",
		"properties":           properties,
		"required":             required,
		"additionalProperties": false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema %s: %w", url, err)
	}
	doc, err := jschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema %s: %w", url, err)
	}

	c := jschema.NewCompiler()
	c.AssertFormat()
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	sch, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %s: %w", url, err)
	}
	return sch, nil
}

// CheckBody validates a decoded JSON body.
func (s *Schema) CheckBody(body any) Errors {
	if s.body == nil {
		return nil
	}
	return s.check(s.body, body)
}

func (s *Schema) CheckParams(params map[string]string) Errors {
	if s.params == nil {
		return nil
	}
	instance := make(map[string]any, len(params))
	for k, v := range params {
		instance[k] = v
	}
	return s.check(s.params, instance)
}

func (s *Schema) check(sch *jschema.Schema, instance any) Errors {
	err := sch.Validate(instance)
	if err == nil {
		return nil
	}

	var ve *jschema.ValidationError
	if !errors.As(err, &ve) {
		return Errors{err.Error()}
	}

	var found []violation
	collect(ve, &found)
	sort.SliceStable(found, func(i, j int) bool {
		return s.rank(found[i].key) < s.rank(found[j].key)
	})

	errs := make(Errors, 0, len(found))
	for _, v := range found {
		errs.Add(v.message)
	}
	return errs
}

func (s *Schema) rank(key string) int {
	if i, ok := s.order[key]; ok {
		return i
	}
	return len(s.order)
}

// Validate wraps next so that it only runs for requests matching s. The
// body is buffered and handed to next unchanged.
func (s *Schema) Validate(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			errs := s.CheckParams(mux.Vars(r))

			if s.body != nil {
				raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
				r.Body.Close()
				if err != nil {
					apperr.Respond(w, logger, apperr.Wrap(apperr.BadRequest, "не удалось прочитать тело запроса", err))
					return
				}
				r.Body = io.NopCloser(bytes.NewReader(raw))

				body, err := decodeObject(raw)
				if err != nil {
					apperr.Respond(w, logger, apperr.Wrap(apperr.BadRequest, "некорректный JSON", err))
					return
				}
				errs = append(errs, s.CheckBody(body)...)
			}

			if len(errs) > 0 {
				apperr.Respond(w, logger, apperr.Wrap(apperr.SchemaValidation, errs.Error(), errs))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func decodeObject(raw []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	v, err := jschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	body, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("body must be a JSON object, got %T", v)
	}
	return body, nil
}

type violation struct {
	key     string
	message string
}

func collect(ve *jschema.ValidationError, found *[]violation) {
	if len(ve.Causes) == 0 {
		*found = append(*found, describe(ve)...)
		return
	}
	for _, cause := range ve.Causes {
		collect(cause, found)
	}
}

// describe words a single failed keyword the way clients of the service
// have always seen it.
func describe(ve *jschema.ValidationError) []violation {
	key := strings.Join(ve.InstanceLocation, ".")
	one := func(format string, args ...any) []violation {
		return []violation{{key: key, message: fmt.Sprintf("%q "+format, append([]any{key}, args...)...)}}
	}

	switch k := ve.ErrorKind.(type) {
	case *kind.Required:
		out := make([]violation, 0, len(k.Missing))
		for _, name := range k.Missing {
			out = append(out, violation{key: name, message: fmt.Sprintf("%q is required", name)})
		}
		return out
	case *kind.AdditionalProperties:
		names := append([]string{}, k.Properties...)
		sort.Strings(names)
		out := make([]violation, 0, len(names))
		for _, name := range names {
			out = append(out, violation{key: name, message: fmt.Sprintf("%q is not allowed", name)})
		}
		return out
	case *kind.Type:
		if len(k.Want) > 0 {
			switch k.Want[0] {
			case "string":
				return one("must be a string")
			case "integer":
				return one("must be an integer")
			case "number":
				return one("must be a number")
			}
		}
		return one("must be of type %s", strings.Join(k.Want, ", "))
	case *kind.MinLength:
		if k.Got == 0 {
			return one("is not allowed to be empty")
		}
		return one("length must be at least %d characters long", k.Want)
	case *kind.MaxLength:
		return one("length must be less than or equal to %d characters long", k.Want)
	case *kind.Format:
		if k.Want == "email" {
			return one("must be a valid email")
		}
		return one("must be a valid %s", k.Want)
	case *kind.Pattern:
		if k.Want == hexPattern.String() {
			return one("must only contain hexadecimal characters")
		}
		return one("with value %q fails to match the required pattern: /%s/", k.Got, k.Want)
	}
	return one("is invalid")
}
