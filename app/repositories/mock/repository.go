package mock

import (
	"sort"
	"sync"
	"time"

	"codenix/app/models"
	"codenix/app/repositories"
)

// BlogRepository is an in-memory implementation of
// repositories.BlogRepository for tests.
type BlogRepository struct {
	posts map[string]*models.BlogPost
	slugs map[string]string
	mutex sync.RWMutex
}

// NewBlogRepository creates an empty in-memory repository.
func NewBlogRepository() *BlogRepository {
	return &BlogRepository{
		posts: make(map[string]*models.BlogPost),
		slugs: make(map[string]string),
	}
}

// Clear removes all stored posts.
func (m *BlogRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.posts = make(map[string]*models.BlogPost)
	m.slugs = make(map[string]string)
}

func (m *BlogRepository) Create(post *models.BlogPost) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, taken := m.slugs[post.Slug]; taken {
		return repositories.ErrSlugTaken
	}
	id, err := repositories.NewID()
	if err != nil {
		return err
	}
	post.ID = id
	post.BeforeCreate()

	m.posts[post.ID] = post.Clone()
	m.slugs[post.Slug] = post.ID
	return nil
}

func (m *BlogRepository) GetByID(id string) (*models.BlogPost, error) {
	if !repositories.ValidID(id) {
		return nil, repositories.ErrInvalidID
	}
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return post.Clone(), nil
}

func (m *BlogRepository) GetBySlug(slug string) (*models.BlogPost, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	id, exists := m.slugs[slug]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return m.posts[id].Clone(), nil
}

func (m *BlogRepository) Update(id string, changes *models.BlogUpdate) (*models.BlogPost, error) {
	if !repositories.ValidID(id) {
		return nil, repositories.ErrInvalidID
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	if changes.Slug != nil && *changes.Slug != post.Slug {
		if owner, taken := m.slugs[*changes.Slug]; taken && owner != id {
			return nil, repositories.ErrSlugTaken
		}
	}

	updated := post.Clone()
	oldSlug := updated.Slug
	changes.Apply(updated)
	updated.UpdatedAt = time.Now()

	m.posts[id] = updated
	if updated.Slug != oldSlug {
		delete(m.slugs, oldSlug)
		m.slugs[updated.Slug] = id
	}
	return updated.Clone(), nil
}

func (m *BlogRepository) Delete(id string) (*models.BlogPost, error) {
	if !repositories.ValidID(id) {
		return nil, repositories.ErrInvalidID
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	delete(m.posts, id)
	delete(m.slugs, post.Slug)
	return post, nil
}

func (m *BlogRepository) Query(filter repositories.Filter, skip, limit int) ([]*models.BlogPost, int, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var matched []*models.BlogPost
	for _, post := range m.posts {
		if filter.Matches(post) {
			matched = append(matched, post.Clone())
		}
	}
	repositories.SortNewestFirst(matched)
	return repositories.Paginate(matched, skip, limit), len(matched), nil
}

func (m *BlogRepository) Distinct(field repositories.Field) ([]string, error) {
	counts, err := m.CountBy(field, 0)
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, len(counts))
	for _, vc := range counts {
		values = append(values, vc.Value)
	}
	sort.Strings(values)
	return values, nil
}

func (m *BlogRepository) CountBy(field repositories.Field, topN int) ([]repositories.ValueCount, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	posts := make([]*models.BlogPost, 0, len(m.posts))
	for _, post := range m.posts {
		posts = append(posts, post)
	}
	return repositories.TopCounts(posts, field, topN), nil
}
