package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fjordlearn/fjordlearn-backend/internal/model"
)

// verbHeader is the fixed column set of the verb interchange format.
// Every column must be present on import.
var verbHeader = []string{
	"verb",
	"stream",
	"infinitive",
	"present",
	"past",
	"perfect",
	"examples_infinitive",
	"examples_present",
	"examples_past",
	"examples_perfect",
	"translation_en",
	"translation_ru",
	"translation_nb",
	"tags",
}

// exampleSeparator flattens newline-separated example sentences into one
// CSV cell. Spreadsheet tools mangle embedded newlines, " | " survives.
const exampleSeparator = " | "

// WriteVerbs writes verb entries in the interchange format. The output
// starts with a UTF-8 BOM so Excel detects the encoding.
func WriteVerbs(w io.Writer, entries []model.VerbEntry) error {
	if _, err := io.WriteString(w, "\uFEFF"); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(verbHeader); err != nil {
		return err
	}
	for _, e := range entries {
		record := []string{
			e.Verb,
			string(e.Stream),
			e.Infinitive,
			e.Present,
			e.Past,
			e.Perfect,
			flattenExamples(e.ExamplesInfinitive),
			flattenExamples(e.ExamplesPresent),
			flattenExamples(e.ExamplesPast),
			flattenExamples(e.ExamplesPerfect),
			e.TranslationEN,
			e.TranslationRU,
			e.TranslationNB,
			JoinTags(e.Tags),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadVerbs parses verb entries from the interchange format. A missing
// column is an error; a row with an unknown stream is counted as skipped.
func ReadVerbs(r io.Reader) ([]model.VerbEntry, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("read header: %w", err)
	}
	index := headerIndex(header)

	var missing []string
	for _, col := range verbHeader {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, 0, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}

	var entries []model.VerbEntry
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

		stream := rec.get("stream")
		if !ValidStream(stream) {
			skipped++
			continue
		}

		entries = append(entries, model.VerbEntry{
			Verb:               rec.get("verb"),
			Stream:             model.Stream(stream),
			Infinitive:         rec.get("infinitive"),
			Present:            rec.get("present"),
			Past:               rec.get("past"),
			Perfect:            rec.get("perfect"),
			ExamplesInfinitive: expandExamples(rec.get("examples_infinitive")),
			ExamplesPresent:    expandExamples(rec.get("examples_present")),
			ExamplesPast:       expandExamples(rec.get("examples_past")),
			ExamplesPerfect:    expandExamples(rec.get("examples_perfect")),
			TranslationEN:      rec.get("translation_en"),
			TranslationRU:      rec.get("translation_ru"),
			TranslationNB:      rec.get("translation_nb"),
			Tags:               SplitTags(rec.get("tags")),
		})
	}
	return entries, skipped, nil
}

func flattenExamples(examples string) string {
	return strings.ReplaceAll(examples, "\n", exampleSeparator)
}

func expandExamples(cell string) string {
	if cell == "" {
		return ""
	}
	if !strings.Contains(cell, exampleSeparator) {
		return cell
	}
	parts := strings.Split(cell, exampleSeparator)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.Join(parts, "\n")
}
