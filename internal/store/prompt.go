package store

import (
	"github.com/promptdir/pd/internal/hydrate"
	"github.com/promptdir/pd/internal/output"
)

// Hydrate fills the addressed template's placeholders with args and appends
// the optional suffix. The template is looked up in the cache; addresses
// without an owner resolve to the acting user. Prompt kind only.
func (s *Store) Hydrate(address string, args hydrate.Args, suffix string) (string, error) {
	if s.kind != KindPrompt {
		return "", output.NewUserError("hydrate is only available for prompts")
	}

	a, err := ParseAddress(address, s.user)
	if err != nil {
		return "", err
	}
	body, ok := s.cache.Lookup(a.String())
	if !ok {
		return "", &TemplateNotFoundError{Name: a.String()}
	}

	return hydrate.Hydrate(body, args, suffix)
}

// CopyContent resolves the content a copy operation should place on the
// clipboard: the raw item, or the hydrated template when doHydrate is set.
func (s *Store) CopyContent(address string, args hydrate.Args, suffix string, doHydrate bool) (string, error) {
	if doHydrate {
		return s.Hydrate(address, args, suffix)
	}
	return s.Content(address)
}
