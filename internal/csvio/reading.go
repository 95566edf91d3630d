package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/fjordlearn/fjordlearn-backend/internal/model"
)

var readingHeader = []string{
	"slug",
	"title",
	"stream",
	"level",
	"tags",
	"body",
	"translation",
	"translation_nb",
	"translation_nn",
	"is_published",
}

// WriteReadings writes readings in the interchange format. The English
// translation occupies the plain "translation" column.
func WriteReadings(w io.Writer, readings []model.Reading) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(readingHeader); err != nil {
		return err
	}
	for _, r := range readings {
		published := "0"
		if r.IsPublished {
			published = "1"
		}
		record := []string{
			r.Slug,
			r.Title,
			string(r.Stream),
			string(r.Level),
			JoinTags(r.Tags),
			r.Body,
			r.TranslationEN,
			r.TranslationNB,
			r.TranslationNN,
			published,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadReadings parses readings. Rows with neither title nor slug are
// counted as skipped; a missing slug is derived from the title, missing
// stream/level fall back to bokmaal/A1.
func ReadReadings(r io.Reader) ([]model.Reading, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("read header: %w", err)
	}
	index := headerIndex(header)

	var readings []model.Reading
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

		title := rec.get("title")
		slug := rec.get("slug")
		if title == "" && slug == "" {
			skipped++
			continue
		}
		if slug == "" {
			slug = Slugify(title)
		}
		if title == "" {
			title = slug
		}
		stream := strings.ToLower(rec.get("stream"))
		if stream == "" {
			stream = string(model.StreamBokmaal)
		}
		level := strings.ToUpper(rec.get("level"))
		if level == "" {
			level = string(model.LevelA1)
		}

		published := rec.get("is_published")
		if published == "" {
			published = "1"
		}

		readings = append(readings, model.Reading{
			Title:         title,
			Slug:          slug,
			Stream:        model.Stream(stream),
			Level:         model.Level(level),
			Body:          rec.get("body"),
			TranslationEN: rec.get("translation"),
			TranslationNB: rec.get("translation_nb"),
			TranslationNN: rec.get("translation_nn"),
			Tags:          SplitTags(rec.get("tags")),
			IsPublished:   published != "0" && !strings.EqualFold(published, "false"),
		})
	}
	return readings, skipped, nil
}
