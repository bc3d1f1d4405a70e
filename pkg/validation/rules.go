package validation

import (
	"regexp"
	"strings"
)

var (
	// URLPattern accepts absolute http(s) links such as poster and trailer URLs.
	URLPattern = regexp.MustCompile(`^(https?:\/\/)(www\.)?([\da-z-.]+)\.([a-z.]{2,6})[\da-zA-Z-._~:?#[\]@!$&'()*+,;=/]*\/?#?$`)

	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@.]{2,}$`)
	hexPattern   = regexp.MustCompile(`^[0-9a-fA-F]*$`)
)

// Keywords is the JSON Schema of a single value.
type Keywords map[string]any

// String is a non-empty string.
func String() Keywords {
	return Keywords{"type": "string", "minLength": 1}
}

func Number() Keywords {
	return Keywords{"type": "number"}
}

func Integer() Keywords {
	return Keywords{"type": "integer"}
}

// Min and Max bound the length of a string in characters.
func (k Keywords) Min(n int) Keywords {
	k["minLength"] = n
	return k
}

func (k Keywords) Max(n int) Keywords {
	k["maxLength"] = n
	return k
}

func (k Keywords) Len(n int) Keywords {
	return k.Min(n).Max(n)
}

func (k Keywords) Email() Keywords {
	k["format"] = "email"
	return k
}

func (k Keywords) Hex() Keywords {
	return k.Pattern(hexPattern)
}

func (k Keywords) Pattern(re *regexp.Regexp) Keywords {
	k["pattern"] = re.String()
	return k
}

// Field is one key of a request body or of the route parameters.
type Field struct {
	Name     string
	Required bool
	Value    Keywords
}

func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func IsURL(s string) bool {
	return URLPattern.MatchString(s)
}

// Errors aggregates every violation found in one pass.
type Errors []string

func (e Errors) Error() string {
	return strings.Join(e, ", ")
}

// Add appends msg when it is not empty.
func (e *Errors) Add(msg string) {
	if msg != "" {
		*e = append(*e, msg)
	}
}

// Err returns nil for an empty set so callers can return it directly.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
