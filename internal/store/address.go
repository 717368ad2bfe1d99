package store

import "strings"

// Address identifies one item: the branch that owns it and its bare name.
// Serialized form is "owner/name", or just "name" when the owner is the
// acting identity.
type Address struct {
	Owner string
	Name  string
}

// String returns the fully qualified owner/name form.
func (a Address) String() string {
	return a.Owner + "/" + a.Name
}

// ParseAddress parses "[owner/]name". A bare name resolves to defaultOwner.
// Both components must be non-empty, contain no further slashes, and the
// name must not escape the content directory.
func ParseAddress(s, defaultOwner string) (Address, error) {
	owner, name := defaultOwner, s
	if strings.Contains(s, "/") {
		parts := strings.Split(s, "/")
		if len(parts) != 2 {
			return Address{}, &InvalidAddressError{Input: s, Reason: "expected owner/name"}
		}
		owner, name = parts[0], parts[1]
	}

	if owner == "" {
		return Address{}, &InvalidAddressError{Input: s, Reason: "empty owner"}
	}
	if name == "" {
		return Address{}, &InvalidAddressError{Input: s, Reason: "empty name"}
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `\`) {
		return Address{}, &InvalidAddressError{Input: s, Reason: "name contains path elements"}
	}

	return Address{Owner: owner, Name: name}, nil
}

// ParseQualified parses an address that must carry an explicit owner, as
// fork requires.
func ParseQualified(s string) (Address, error) {
	if !strings.Contains(s, "/") {
		return Address{}, &InvalidAddressError{Input: s, Reason: "expected owner/name"}
	}
	return ParseAddress(s, "")
}
