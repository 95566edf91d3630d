package csvio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fjordlearn/fjordlearn-backend/internal/model"
)

func TestGlossaryRoundTrip(t *testing.T) {
	terms := []model.GlossaryTerm{
		{
			Term:          "hyggelig",
			Translation:   "pleasant",
			TranslationEN: "nice, pleasant",
			TranslationRU: "приятный",
			Explanation:   "Brukes om folk og situasjoner.",
			Stream:        model.StreamBokmaal,
			Level:         model.LevelA1,
			Tags:          []string{"adjektiv"},
		},
	}

	var buf bytes.Buffer
	if err := WriteGlossary(&buf, terms); err != nil {
		t.Fatalf("write: %v", err)
	}

	parsed, skipped, err := ReadGlossary(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if skipped != 0 || len(parsed) != 1 {
		t.Fatalf("parsed=%d skipped=%d", len(parsed), skipped)
	}
	if parsed[0].Term != "hyggelig" || parsed[0].Level != model.LevelA1 {
		t.Errorf("round trip lost fields: %+v", parsed[0])
	}
}

func TestReadGlossaryNormalizesAndSkips(t *testing.T) {
	csv := "term,translation,translation_en,translation_ru,translation_nb,explanation,stream,level,tags\n" +
		"takk,thanks,,,,,BOKMAAL,a1,\n" +
		",missing term,,,,,bokmaal,A1,\n" +
		"hei,hello,,,,,,A1,\n"

	parsed, skipped, err := ReadGlossary(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	// Rows without a term or stream are skipped.
	if skipped != 2 {
		t.Errorf("skipped = %d, want 2", skipped)
	}
	if len(parsed) != 1 {
		t.Fatalf("parsed = %d, want 1", len(parsed))
	}
	if parsed[0].Stream != model.StreamBokmaal || parsed[0].Level != model.LevelA1 {
		t.Errorf("stream/level not normalized: %+v", parsed[0])
	}
}

func TestExpressionDefaultsStream(t *testing.T) {
	csv := "phrase,meaning_en,meaning_nb,meaning_nn,meaning_ru,example,stream,tags\n" +
		"ta det med ro,take it easy,,,,,,idiom;a2\n" +
		",orphan meaning,,,,,,\n"

	parsed, skipped, err := ReadExpressions(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
	if len(parsed) != 1 {
		t.Fatalf("parsed = %d, want 1", len(parsed))
	}
	if parsed[0].Stream != model.StreamBokmaal {
		t.Errorf("stream default = %s, want bokmaal", parsed[0].Stream)
	}
	if len(parsed[0].Tags) != 2 {
		t.Errorf("tags = %v", parsed[0].Tags)
	}
}
