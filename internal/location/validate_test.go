package location

import (
	"strings"
	"testing"
)

func TestValidateAccepts(t *testing.T) {
	in := CreateInput{Name: "Barangay Hall", Type: TypeGovernment, Lat: 14.6, Lng: 121.0}
	if problems := in.Validate(); len(problems) != 0 {
		t.Fatalf("unexpected problems: %v", problems)
	}
}

func TestValidateNameTooShort(t *testing.T) {
	in := CreateInput{Name: "Ab", Type: TypeGovernment, Lat: 14.6, Lng: 121.0}
	problems := in.Validate()
	if len(problems) != 1 || !strings.Contains(problems[0], "at least 3") {
		t.Fatalf("expected minimum length violation, got %v", problems)
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	in := CreateInput{
		Name:        strings.Repeat("x", 101),
		Description: strings.Repeat("y", 501),
		Type:        "",
		Image:       "not-a-ref",
		Lat:         14.6,
		Lng:         121.0,
	}
	problems := in.Validate()
	if len(problems) != 4 {
		t.Fatalf("expected 4 violations, got %v", problems)
	}
}

func TestValidateCountsCharactersNotBytes(t *testing.T) {
	// 98 characters but well over 100 bytes
	in := CreateInput{Name: strings.Repeat("ñ", 98), Type: TypeReligious, Lat: 14.6, Lng: 121.0}
	if problems := in.Validate(); len(problems) != 0 {
		t.Fatalf("multibyte name under the limit rejected: %v", problems)
	}

	in.Name = strings.Repeat("ñ", 101)
	if problems := in.Validate(); len(problems) != 1 {
		t.Fatalf("expected maximum length violation, got %v", problems)
	}

	in = CreateInput{Name: "Kapilya", Type: TypeReligious, Description: strings.Repeat("é", 500), Lat: 14.6, Lng: 121.0}
	if problems := in.Validate(); len(problems) != 0 {
		t.Fatalf("multibyte description under the limit rejected: %v", problems)
	}
}

func TestValidateTrimsName(t *testing.T) {
	in := CreateInput{Name: "  ab  ", Type: TypeSchool, Lat: 14.6, Lng: 121.0}
	problems := in.Validate()
	if len(problems) != 1 {
		t.Fatalf("expected trimmed name to fail minimum length, got %v", problems)
	}
}

func TestValidateUnknownType(t *testing.T) {
	in := CreateInput{Name: "Plaza", Type: "PLAZA", Lat: 14.6, Lng: 121.0}
	problems := in.Validate()
	if len(problems) != 1 || !strings.Contains(problems[0], "unknown location type") {
		t.Fatalf("expected unknown type violation, got %v", problems)
	}
}

func TestValidateImageRefs(t *testing.T) {
	ok := []string{
		"data:image/png;base64,AAAA",
		"https://example.com/pic.jpg",
		"http://example.com/pic.jpg",
		"/uploads/abc.png",
		"",
	}
	for _, ref := range ok {
		in := CreateInput{Name: "Chapel", Type: TypeReligious, Image: ref, Lat: 14.6, Lng: 121.0}
		if problems := in.Validate(); len(problems) != 0 {
			t.Fatalf("image %q rejected: %v", ref, problems)
		}
	}

	in := CreateInput{Name: "Chapel", Type: TypeReligious, Image: "ftp://nope", Lat: 14.6, Lng: 121.0}
	if problems := in.Validate(); len(problems) != 1 {
		t.Fatalf("expected image violation, got %v", problems)
	}
}

func TestValidateCoordinateRange(t *testing.T) {
	in := CreateInput{Name: "Nowhere", Type: TypeSchool, Lat: 95, Lng: 200}
	if problems := in.Validate(); len(problems) != 2 {
		t.Fatalf("expected 2 coordinate violations, got %v", problems)
	}
}
