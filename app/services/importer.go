package services

import (
	"encoding/json"
	"fmt"
	"io"

	"blogapi/app/models"
)

// ImportResult summarizes a bulk post import.
type ImportResult struct {
	Imported int
	Skipped  int
}

// Import reads a JSON array of posts and upserts each record by id.
// Records missing a required field or carrying an unparseable date are
// skipped, not fatal, so one bad entry cannot abort a migration.
func (s *PostService) Import(r io.Reader) (ImportResult, error) {
	var records []CreatePostInput
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return ImportResult{}, fmt.Errorf("decoding import file: %w", err)
	}

	var result ImportResult
	for _, record := range records {
		if record.ID == "" || record.Title == "" || record.Content == "" || record.Date == "" {
			result.Skipped++
			continue
		}

		date, err := parsePostDate(record.Date)
		if err != nil {
			result.Skipped++
			continue
		}

		post := &models.Post{
			ID:      record.ID,
			Title:   record.Title,
			Content: record.Content,
			Date:    date,
		}
		if record.ViewCount != nil {
			post.ViewCount = *record.ViewCount
		}
		post.BeforeSave()

		if err := s.repo.Upsert(post); err != nil {
			return result, err
		}
		result.Imported++
	}

	return result, nil
}
