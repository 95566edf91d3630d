package csvio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fjordlearn/fjordlearn-backend/internal/model"
)

func TestReadingRoundTrip(t *testing.T) {
	readings := []model.Reading{
		{
			Title:         "På kafé",
			Slug:          "pa-kafe",
			Stream:        model.StreamBokmaal,
			Level:         model.LevelA2,
			Body:          "Anna går på kafé hver lørdag.",
			TranslationEN: "Anna goes to a café every Saturday.",
			Tags:          []string{"hverdag"},
			IsPublished:   true,
		},
	}

	var buf bytes.Buffer
	if err := WriteReadings(&buf, readings); err != nil {
		t.Fatalf("write: %v", err)
	}

	parsed, skipped, err := ReadReadings(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if skipped != 0 || len(parsed) != 1 {
		t.Fatalf("parsed=%d skipped=%d", len(parsed), skipped)
	}

	got := parsed[0]
	if got.Slug != "pa-kafe" || !got.IsPublished {
		t.Errorf("round trip lost fields: %+v", got)
	}
	if got.TranslationEN != readings[0].TranslationEN {
		t.Errorf("translation lost: %q", got.TranslationEN)
	}
}

func TestReadReadingsDerivesSlugAndDefaults(t *testing.T) {
	csv := "slug,title,stream,level,tags,body,translation,translation_nb,translation_nn,is_published\n" +
		",På Fjellet!,,,,tekst,,,,\n" +
		",,,,,,,,,\n"

	parsed, skipped, err := ReadReadings(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1 (empty row)", skipped)
	}
	if len(parsed) != 1 {
		t.Fatalf("parsed = %d, want 1", len(parsed))
	}

	got := parsed[0]
	if got.Slug != "pa-fjellet" {
		t.Errorf("derived slug = %q, want pa-fjellet", got.Slug)
	}
	if got.Stream != model.StreamBokmaal || got.Level != model.LevelA1 {
		t.Errorf("defaults not applied: stream=%s level=%s", got.Stream, got.Level)
	}
	if !got.IsPublished {
		t.Error("blank is_published should default to published")
	}
}

func TestReadReadingsUnpublishedFlag(t *testing.T) {
	csv := "slug,title,is_published\ndraft-text,Utkast,0\nfalse-text,Utkast to,false\n"

	parsed, _, err := ReadReadings(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for _, r := range parsed {
		if r.IsPublished {
			t.Errorf("reading %q should be unpublished", r.Slug)
		}
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct{ in, want string }{
		{"På Fjellet", "pa-fjellet"},
		{"Blåbær og rømme", "blabaer-og-romme"},
		{"Hello, World!", "hello-world"},
		{"  spaced  out  ", "spaced-out"},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
