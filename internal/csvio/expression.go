package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/fjordlearn/fjordlearn-backend/internal/model"
)

var expressionHeader = []string{
	"phrase",
	"meaning_en",
	"meaning_nb",
	"meaning_nn",
	"meaning_ru",
	"example",
	"stream",
	"tags",
}

// WriteExpressions writes expressions in the interchange format.
func WriteExpressions(w io.Writer, expressions []model.Expression) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(expressionHeader); err != nil {
		return err
	}
	for _, e := range expressions {
		record := []string{
			e.Phrase,
			e.MeaningEN,
			e.MeaningNB,
			e.MeaningNN,
			e.MeaningRU,
			e.Example,
			string(e.Stream),
			JoinTags(e.Tags),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadExpressions parses expressions. Rows without a phrase are counted
// as skipped; a missing stream falls back to bokmaal.
func ReadExpressions(r io.Reader) ([]model.Expression, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("read header: %w", err)
	}
	index := headerIndex(header)

	var expressions []model.Expression
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

		phrase := rec.get("phrase")
		if phrase == "" {
			skipped++
			continue
		}
		stream := strings.ToLower(rec.get("stream"))
		if stream == "" {
			stream = string(model.StreamBokmaal)
		}

		expressions = append(expressions, model.Expression{
			Phrase:    phrase,
			MeaningEN: rec.get("meaning_en"),
			MeaningNB: rec.get("meaning_nb"),
			MeaningNN: rec.get("meaning_nn"),
			MeaningRU: rec.get("meaning_ru"),
			Example:   rec.get("example"),
			Stream:    model.Stream(stream),
			Tags:      SplitTags(rec.get("tags")),
		})
	}
	return expressions, skipped, nil
}
