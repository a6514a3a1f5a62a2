package blog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World!", "hello-world"},
		{"  Modular Kitchen Design Ideas  ", "modular-kitchen-design-ideas"},
		{"AC Repair & Installation", "ac-repair-installation"},
		{"already-slugified", "already-slugified"},
		{"Multiple   spaces___and--dashes", "multiple-spaces-and-dashes"},
		{"---trim me---", "trim-me"},
		{"!!!", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "Slugify(%q)", tc.in)
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"Hello World!",
		"Top 10 Pest Control Tips (2024)",
		"  Living Room / Bedroom  ",
	}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "Slugify not idempotent for %q", in)
	}
}
