package models

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks if the post meets all validation requirements.
func (p *BlogPost) Validate() error {
	return validate.Struct(p)
}

// Normalize trims surrounding whitespace from the caller-supplied string
// fields, so a value of only spaces is empty by the time Validate runs.
func (p *BlogPost) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Slug = strings.TrimSpace(p.Slug)
	p.Excerpt = strings.TrimSpace(p.Excerpt)
	p.Content = strings.TrimSpace(p.Content)
	p.Category = strings.TrimSpace(p.Category)
	p.Author.Name = strings.TrimSpace(p.Author.Name)
}

// BeforeCreate normalizes fields and sets up timestamps before creation.
// Timestamps already set (e.g. by tests or imports) are preserved.
func (p *BlogPost) BeforeCreate() {
	p.Normalize()
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}
}

// Featured returns the reduced projection of the post used by the
// featured listing.
func (p *BlogPost) Featured() *FeaturedPost {
	return &FeaturedPost{
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		Excerpt:       p.Excerpt,
		Author:        p.Author,
		Category:      p.Category,
		FeaturedImage: p.FeaturedImage,
		CreatedAt:     p.CreatedAt,
	}
}

// Clone returns a deep copy of the post. Repositories hand out clones so
// callers cannot mutate stored state through shared slices.
func (p *BlogPost) Clone() *BlogPost {
	clone := *p
	if p.Tags != nil {
		clone.Tags = append([]string(nil), p.Tags...)
	}
	if p.SEO != nil {
		seo := *p.SEO
		if p.SEO.Keywords != nil {
			seo.Keywords = append([]string(nil), p.SEO.Keywords...)
		}
		clone.SEO = &seo
	}
	return &clone
}
