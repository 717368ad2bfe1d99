// Package hydrate fills named {placeholder} tokens in a template body with
// caller-supplied arguments. It is a pure string transformation: no I/O and
// no shared state.
package hydrate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/promptdir/pd/internal/output"
)

// placeholderPattern matches {name} tokens, non-greedy, no nested braces.
var placeholderPattern = regexp.MustCompile(`\{(.*?)\}`)

// Arg is one hydration argument. Args are a slice, not a map, so "extras"
// append in the order the caller supplied them.
type Arg struct {
	Key   string
	Value string
}

// Args is an ordered argument list.
type Args []Arg

// Get returns the value for key and whether it was present.
func (a Args) Get(key string) (string, bool) {
	for _, arg := range a {
		if arg.Key == key {
			return arg.Value, true
		}
	}
	return "", false
}

// Keys returns the argument keys in order.
func (a Args) Keys() []string {
	keys := make([]string, len(a))
	for i, arg := range a {
		keys[i] = arg.Key
	}
	return keys
}

// MissingArgsError reports placeholders with no matching argument. The
// message enumerates the missing names, the full required set, and what was
// actually supplied, so the caller can see the whole picture at once.
type MissingArgsError struct {
	Missing  []string
	Required []string
	Provided []string
}

// Error implements the error interface.
func (e *MissingArgsError) Error() string {
	provided := strings.Join(e.Provided, ", ")
	if provided == "" {
		provided = "none"
	}
	return fmt.Sprintf("missing required argument(s): %s. Template requires: %s. You provided: %s",
		strings.Join(e.Missing, ", "), strings.Join(e.Required, ", "), provided)
}

// ExitCode maps missing arguments to a user error.
func (e *MissingArgsError) ExitCode() int {
	return output.ExitUserError
}

// Placeholders returns the ordered set of placeholder names in body,
// first-occurrence order, duplicates removed.
func Placeholders(body string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range placeholderPattern.FindAllStringSubmatch(body, -1) {
		name := m[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// Hydrate substitutes every placeholder in body with its argument value,
// appends unconsumed arguments as ", key is value" clauses in argument
// order, then appends ", suffix" when suffix is non-empty.
//
// Substitution is a single deterministic pass: each distinct placeholder is
// replaced once with its value, and a value containing braces is never
// re-expanded.
func Hydrate(body string, args Args, suffix string) (string, error) {
	placeholders := Placeholders(body)

	var missing []string
	for _, name := range placeholders {
		if _, ok := args.Get(name); !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return "", &MissingArgsError{
			Missing:  missing,
			Required: placeholders,
			Provided: args.Keys(),
		}
	}

	// Single pass over the body: substituted values are never re-expanded.
	consumed := make(map[string]bool, len(placeholders))
	result := placeholderPattern.ReplaceAllStringFunc(body, func(token string) string {
		name := token[1 : len(token)-1]
		value, _ := args.Get(name)
		consumed[name] = true
		return value
	})

	for _, arg := range args {
		if !consumed[arg.Key] {
			result += fmt.Sprintf(", %s is %s", arg.Key, arg.Value)
		}
	}

	if suffix != "" {
		result += ", " + suffix
	}

	return result, nil
}
