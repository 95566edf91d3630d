package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/fjordlearn/fjordlearn-backend/internal/model"
)

var glossaryHeader = []string{
	"term",
	"translation",
	"translation_en",
	"translation_ru",
	"translation_nb",
	"explanation",
	"stream",
	"level",
	"tags",
}

// WriteGlossary writes glossary terms in the interchange format.
func WriteGlossary(w io.Writer, terms []model.GlossaryTerm) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(glossaryHeader); err != nil {
		return err
	}
	for _, t := range terms {
		record := []string{
			t.Term,
			t.Translation,
			t.TranslationEN,
			t.TranslationRU,
			t.TranslationNB,
			t.Explanation,
			string(t.Stream),
			string(t.Level),
			JoinTags(t.Tags),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadGlossary parses glossary terms. Rows missing the term, stream or
// level key are counted as skipped.
func ReadGlossary(r io.Reader) ([]model.GlossaryTerm, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("read header: %w", err)
	}
	index := headerIndex(header)

	var terms []model.GlossaryTerm
	skipped := 0
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, err
		}
		rec := row{index: index, fields: fields}

		term := rec.get("term")
		stream := strings.ToLower(rec.get("stream"))
		level := strings.ToUpper(rec.get("level"))
		if term == "" || stream == "" || level == "" {
			skipped++
			continue
		}

		terms = append(terms, model.GlossaryTerm{
			Term:          term,
			Translation:   rec.get("translation"),
			TranslationEN: rec.get("translation_en"),
			TranslationRU: rec.get("translation_ru"),
			TranslationNB: rec.get("translation_nb"),
			Explanation:   rec.get("explanation"),
			Stream:        model.Stream(stream),
			Level:         model.Level(level),
			Tags:          SplitTags(rec.get("tags")),
		})
	}
	return terms, skipped, nil
}
