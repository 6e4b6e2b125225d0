package models

import (
	"errors"
	"time"
)

// Validate checks if the post meets all validation requirements.
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.Date.IsZero() {
		return errors.New("date cannot be zero")
	}

	return nil
}

// BeforeSave stamps the server-managed fields before any write. The
// publish date is caller-supplied and never touched here.
func (p *Post) BeforeSave() {
	p.UpdatedAt = time.Now().UTC()
	if p.ViewCount < 0 {
		p.ViewCount = 0
	}
}
