package refined

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/refined/pkg/constant"
)

// Pattern names a regular expression in RE2 syntax.
type Pattern interface {
	Pattern() string
}

// compiled caches one *regexp.Regexp per pattern string.
var compiled sync.Map

func compile(pattern string) *regexp.Regexp {
	if re, ok := compiled.Load(pattern); ok {
		return re.(*regexp.Regexp)
	}
	re, _ := compiled.LoadOrStore(pattern, regexp.MustCompile(pattern))
	return re.(*regexp.Regexp)
}

// Matches is satisfied by strings matching the pattern P.
// An invalid pattern panics on first use.
type Matches[P Pattern] struct{}

func (Matches[P]) Check(value string) error {
	var p P
	if !compile(p.Pattern()).MatchString(value) {
		return newViolation(value, KeyPattern, map[string]any{"pattern": p.Pattern()})
	}
	return nil
}

func (Matches[P]) Describe() string {
	var p P
	return fmt.Sprintf("matching pattern %q", p.Pattern())
}

// UUID is satisfied by strings that parse as a UUID in any of the forms
// accepted by uuid.Parse.
type UUID struct{}

func (UUID) Check(value string) error {
	if _, err := uuid.Parse(value); err != nil {
		return newViolation(value, KeyUUID, nil)
	}
	return nil
}

func (UUID) Describe() string {
	return "a valid UUID"
}

// UUIDVersion is satisfied by strings that parse as a UUID of version N.
type UUIDVersion[N constant.Const[int]] struct{}

func (UUIDVersion[N]) Check(value string) error {
	var n N
	id, err := uuid.Parse(value)
	if err != nil || int(id.Version()) != n.Value() {
		return newViolation(value, KeyUUIDVersion, map[string]any{"version": n.Value()})
	}
	return nil
}

func (UUIDVersion[N]) Describe() string {
	var n N
	return fmt.Sprintf("a UUID of version %d", n.Value())
}
