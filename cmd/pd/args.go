// Package main provides the entry point for the pd CLI.
package main

import (
	"fmt"
	"strings"

	"github.com/promptdir/pd/internal/hydrate"
)

// parseTemplateArgs turns repeated --arg key=value flags into ordered
// hydration arguments. Flag order is the insertion order, which is also the
// order "extras" are appended in.
func parseTemplateArgs(raw []string) (hydrate.Args, error) {
	args := make(hydrate.Args, 0, len(raw))
	for _, pair := range raw {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --arg %q: expected key=value", pair)
		}
		args = append(args, hydrate.Arg{Key: key, Value: value})
	}
	return args, nil
}
