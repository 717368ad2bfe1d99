package store

import (
	"fmt"

	"github.com/promptdir/pd/internal/output"
)

// NotFoundError reports a missing item.
type NotFoundError struct {
	Kind    Kind
	Address string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Address)
}

// ExitCode maps missing items to a user error.
func (e *NotFoundError) ExitCode() int {
	return output.ExitUserError
}

// ExistsError reports a destination item that already exists.
type ExistsError struct {
	Kind    Kind
	Address string
}

// Error implements the error interface.
func (e *ExistsError) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.Kind, e.Address)
}

// ExitCode maps existing destinations to a conflict.
func (e *ExistsError) ExitCode() int {
	return output.ExitConflict
}

// PermissionError reports a mutation aimed at another user's branch. The
// authorization invariant is checked before any file or git operation runs.
type PermissionError struct {
	Verb  string // "write", "delete", "edit"
	Owner string
}

// Error implements the error interface.
func (e *PermissionError) Error() string {
	return fmt.Sprintf("cannot %s in another user's branch: %s", e.Verb, e.Owner)
}

// ExitCode maps authorization failures to a conflict.
func (e *PermissionError) ExitCode() int {
	return output.ExitConflict
}

// InvalidAddressError reports a malformed owner/name address.
type InvalidAddressError struct {
	Input  string
	Reason string
}

// Error implements the error interface.
func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid address %q: %s", e.Input, e.Reason)
}

// ExitCode maps malformed addresses to a user error.
func (e *InvalidAddressError) ExitCode() int {
	return output.ExitUserError
}

// TemplateNotFoundError reports a hydration lookup miss in the cache.
type TemplateNotFoundError struct {
	Name string
}

// Error implements the error interface.
func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template not found: %s", e.Name)
}

// ExitCode maps missing templates to a user error.
func (e *TemplateNotFoundError) ExitCode() int {
	return output.ExitUserError
}
