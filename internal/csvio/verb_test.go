package csvio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fjordlearn/fjordlearn-backend/internal/model"
)

func TestVerbRoundTrip(t *testing.T) {
	entries := []model.VerbEntry{
		{
			Verb:               "drikke",
			Stream:             model.StreamBokmaal,
			Infinitive:         "å drikke",
			Present:            "drikker",
			Past:               "drakk",
			Perfect:            "har drukket",
			ExamplesInfinitive: "Jeg liker å drikke kaffe.\nHan vil drikke vann.",
			ExamplesPresent:    "Hun drikker te.",
			TranslationEN:      "to drink",
			TranslationRU:      "пить",
			Tags:               []string{"a1", "sterke-verb"},
		},
	}

	var buf bytes.Buffer
	if err := WriteVerbs(&buf, entries); err != nil {
		t.Fatalf("write: %v", err)
	}

	if !strings.HasPrefix(buf.String(), "\uFEFF") {
		t.Error("output missing UTF-8 BOM")
	}
	if !strings.Contains(buf.String(), "Jeg liker å drikke kaffe. | Han vil drikke vann.") {
		t.Error("newlines not flattened with example separator")
	}

	parsed, skipped, err := ReadVerbs(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	if len(parsed) != 1 {
		t.Fatalf("parsed %d entries, want 1", len(parsed))
	}

	got := parsed[0]
	if got.Verb != "drikke" || got.Stream != model.StreamBokmaal {
		t.Errorf("key fields lost: %+v", got)
	}
	if got.ExamplesInfinitive != "Jeg liker å drikke kaffe.\nHan vil drikke vann." {
		t.Errorf("examples not restored: %q", got.ExamplesInfinitive)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "a1" {
		t.Errorf("tags not restored: %v", got.Tags)
	}
}

func TestReadVerbsMissingColumn(t *testing.T) {
	csv := "verb,stream,infinitive\ndrikke,bokmaal,å drikke\n"
	if _, _, err := ReadVerbs(strings.NewReader(csv)); err == nil {
		t.Fatal("expected error for missing columns")
	}
}

func TestReadVerbsSkipsUnknownStream(t *testing.T) {
	header := strings.Join(verbHeader, ",")
	csv := header + "\n" +
		"drikke,bokmaal,å drikke,drikker,drakk,har drukket,,,,,to drink,,,\n" +
		"drikke,danish,å drikke,drikker,drakk,har drukket,,,,,to drink,,,\n"

	entries, skipped, err := ReadVerbs(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("entries = %d, want 1", len(entries))
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
}
