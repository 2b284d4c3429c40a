package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"admin@university.edu", "first.last+tag@example.co"}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = false, want true", email)
		}
	}

	invalid := []string{"", "not-an-email", "missing@tld", "@example.com"}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = true, want false", email)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Mro":                "mro",
		"  River Lives  ":    "river-lives",
		"Khumi: Field Notes": "khumi-field-notes",
		"---":                "",
	}

	for input, want := range tests {
		if got := Slugify(input); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", input, got, want)
		}
	}
}
