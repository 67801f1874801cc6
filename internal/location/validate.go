package location

import (
	"strings"
	"unicode/utf8"
)

const (
	nameMinLen        = 3
	nameMaxLen        = 100
	descriptionMaxLen = 500
)

// Validate checks a creation payload and returns every violated rule as a
// human-readable message. An empty slice means the input is acceptable.
// No side effects: callers must not touch the database while this returns
// anything.
func (in CreateInput) Validate() []string {
	var problems []string

	// lengths count characters, not bytes, so names with diacritics are
	// measured the way users see them
	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		problems = append(problems, "name is required")
	case utf8.RuneCountInString(name) < nameMinLen:
		problems = append(problems, "name must be at least 3 characters")
	case utf8.RuneCountInString(name) > nameMaxLen:
		problems = append(problems, "name must be at most 100 characters")
	}

	if in.Type == "" {
		problems = append(problems, "type is required")
	} else if !KnownType(in.Type) {
		problems = append(problems, "unknown location type: "+in.Type)
	}

	if utf8.RuneCountInString(in.Description) > descriptionMaxLen {
		problems = append(problems, "description must be at most 500 characters")
	}

	if in.Image != "" && !validImageRef(in.Image) {
		problems = append(problems, "image must be a data URI, an http(s) URL, or an /uploads/ path")
	}

	if in.Lat < -90 || in.Lat > 90 {
		problems = append(problems, "latitude must be between -90 and 90")
	}
	if in.Lng < -180 || in.Lng > 180 {
		problems = append(problems, "longitude must be between -180 and 180")
	}

	return problems
}

func validImageRef(ref string) bool {
	return strings.HasPrefix(ref, "data:image/") ||
		strings.HasPrefix(ref, "http://") ||
		strings.HasPrefix(ref, "https://") ||
		strings.HasPrefix(ref, "/uploads/")
}
