package services

import (
	"fmt"
	"strings"

	"codenix/app/models"
	"codenix/app/repositories"
)

const (
	// DefaultPageSize is the page size used when the caller supplies none.
	DefaultPageSize = 10
	// DefaultFeaturedLimit caps the featured listing when no limit is given.
	DefaultFeaturedLimit = 5
	// StatsTopN is how many top categories/authors the analytics report.
	StatsTopN = 5
)

// Page is the pagination block attached to every list response.
type Page struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalBlogs  int  `json:"totalBlogs"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

// BlogStats is the aggregate report of the analytics endpoint.
type BlogStats struct {
	TotalBlogs        int                       `json:"totalBlogs"`
	TotalCategories   int                       `json:"totalCategories"`
	TotalTags         int                       `json:"totalTags"`
	TotalAuthors      int                       `json:"totalAuthors"`
	PopularCategories []repositories.ValueCount `json:"popularCategories"`
	ActiveAuthors     []repositories.ValueCount `json:"activeAuthors"`
}

// BlogService handles business logic for blog posts.
type BlogService struct {
	repo          repositories.BlogRepository
	featuredLimit int
}

// NewBlogService creates a new BlogService.
func NewBlogService(repo repositories.BlogRepository) *BlogService {
	return &BlogService{repo: repo, featuredLimit: DefaultFeaturedLimit}
}

// SetFeaturedLimit overrides the configured size of the featured listing.
// Non-positive values are ignored.
func (s *BlogService) SetFeaturedLimit(limit int) {
	if limit > 0 {
		s.featuredLimit = limit
	}
}

// CreatePost validates and persists a new post. Fields are trimmed
// first, so whitespace-only values fail the required checks.
func (s *BlogService) CreatePost(post *models.BlogPost) error {
	post.Normalize()
	if err := post.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return s.repo.Create(post)
}

// GetPost retrieves a post by id.
func (s *BlogService) GetPost(id string) (*models.BlogPost, error) {
	return s.repo.GetByID(id)
}

// GetPostBySlug retrieves a post by its slug.
func (s *BlogService) GetPostBySlug(slug string) (*models.BlogPost, error) {
	return s.repo.GetBySlug(slug)
}

// UpdatePost applies a partial update. Required fields that are part of
// the update must not be emptied.
func (s *BlogService) UpdatePost(id string, changes *models.BlogUpdate) (*models.BlogPost, error) {
	if err := validateUpdate(changes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return s.repo.Update(id, changes)
}

// DeletePost deletes a post and returns the removed document.
func (s *BlogService) DeletePost(id string) (*models.BlogPost, error) {
	return s.repo.Delete(id)
}

// ListPosts returns one page of posts matching the filter, newest first.
func (s *BlogService) ListPosts(filter repositories.Filter, page, limit int) ([]*models.BlogPost, *Page, error) {
	page, limit = normalize(page, limit)
	posts, total, err := s.repo.Query(filter, (page-1)*limit, limit)
	if err != nil {
		return nil, nil, err
	}
	return posts, paginate(page, limit, total), nil
}

// SearchPosts runs the full-text search over title, excerpt, content,
// category, tags and author name. An empty query is rejected.
func (s *BlogService) SearchPosts(q string, page, limit int) ([]*models.BlogPost, *Page, error) {
	if strings.TrimSpace(q) == "" {
		return nil, nil, ErrSearchQueryRequired
	}
	return s.ListPosts(repositories.Filter{Query: q}, page, limit)
}

// FeaturedPosts returns the most recent posts in the reduced projection,
// ignoring all filters and pagination.
func (s *BlogService) FeaturedPosts(limit int) ([]*models.FeaturedPost, error) {
	if limit < 1 {
		limit = s.featuredLimit
	}
	posts, _, err := s.repo.Query(repositories.Filter{}, 0, limit)
	if err != nil {
		return nil, err
	}
	featured := make([]*models.FeaturedPost, 0, len(posts))
	for _, post := range posts {
		featured = append(featured, post.Featured())
	}
	return featured, nil
}

// Categories returns the distinct category values.
func (s *BlogService) Categories() ([]string, error) {
	return s.repo.Distinct(repositories.FieldCategory)
}

// Tags returns the distinct tag values.
func (s *BlogService) Tags() ([]string, error) {
	return s.repo.Distinct(repositories.FieldTags)
}

// Stats assembles the analytics report: totals plus the most popular
// categories and most active authors.
func (s *BlogService) Stats() (*BlogStats, error) {
	_, total, err := s.repo.Query(repositories.Filter{}, 0, 0)
	if err != nil {
		return nil, err
	}
	categories, err := s.repo.Distinct(repositories.FieldCategory)
	if err != nil {
		return nil, err
	}
	tags, err := s.repo.Distinct(repositories.FieldTags)
	if err != nil {
		return nil, err
	}
	authors, err := s.repo.Distinct(repositories.FieldAuthor)
	if err != nil {
		return nil, err
	}
	popularCategories, err := s.repo.CountBy(repositories.FieldCategory, StatsTopN)
	if err != nil {
		return nil, err
	}
	activeAuthors, err := s.repo.CountBy(repositories.FieldAuthor, StatsTopN)
	if err != nil {
		return nil, err
	}
	return &BlogStats{
		TotalBlogs:        total,
		TotalCategories:   len(categories),
		TotalTags:         len(tags),
		TotalAuthors:      len(authors),
		PopularCategories: popularCategories,
		ActiveAuthors:     activeAuthors,
	}, nil
}

func normalize(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	return page, limit
}

func paginate(page, limit, total int) *Page {
	totalPages := (total + limit - 1) / limit
	return &Page{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalBlogs:  total,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}

// validateUpdate rejects updates that would blank out a required field.
func validateUpdate(changes *models.BlogUpdate) error {
	checks := map[string]*string{
		"title":    changes.Title,
		"slug":     changes.Slug,
		"excerpt":  changes.Excerpt,
		"content":  changes.Content,
		"category": changes.Category,
	}
	for field, value := range checks {
		if value != nil && strings.TrimSpace(*value) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
	}
	if changes.Author != nil && strings.TrimSpace(changes.Author.Name) == "" {
		return fmt.Errorf("author name cannot be empty")
	}
	return nil
}
