package repositories

import (
	"errors"

	"codenix/app/models"
)

var (
	// ErrNotFound is returned when no document matches the given id or slug.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidID is returned when an id is not a well-formed post id.
	ErrInvalidID = errors.New("invalid post id")
	// ErrSlugTaken is returned when a create or update would violate slug
	// uniqueness.
	ErrSlugTaken = errors.New("slug already exists")
)

// Field names a document field that supports distinct-value listing and
// grouped counting.
type Field string

const (
	FieldCategory Field = "category"
	FieldTags     Field = "tags"
	FieldAuthor   Field = "author"
)

// ValueCount pairs a field value with its number of occurrences.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// BlogRepository defines the interface for blog post data access.
type BlogRepository interface {
	// Create persists a new post, assigning its id and timestamps.
	// Returns ErrSlugTaken if the slug is already in use.
	Create(post *models.BlogPost) error

	// GetByID returns the post with the given id, ErrInvalidID for
	// malformed ids, or ErrNotFound.
	GetByID(id string) (*models.BlogPost, error)

	// GetBySlug returns the post with the given slug (exact,
	// case-sensitive) or ErrNotFound.
	GetBySlug(slug string) (*models.BlogPost, error)

	// Update applies a partial update. Slug uniqueness is re-checked,
	// excluding the post itself, only when the update carries a slug.
	Update(id string, changes *models.BlogUpdate) (*models.BlogPost, error)

	// Delete removes the post and returns the removed document.
	Delete(id string) (*models.BlogPost, error)

	// Query returns one page of posts matching the filter, newest first,
	// together with the total number of matching posts across all pages.
	Query(filter Filter, skip, limit int) ([]*models.BlogPost, int, error)

	// Distinct returns the sorted set of unique values the field takes
	// across the whole collection.
	Distinct(field Field) ([]string, error)

	// CountBy returns the topN most frequent values of the field, paired
	// with their occurrence counts, ordered by count descending.
	CountBy(field Field, topN int) ([]ValueCount, error)
}
