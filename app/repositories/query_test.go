package repositories

import (
	"testing"
	"time"

	"codenix/app/models"

	"github.com/stretchr/testify/assert"
)

func samplePost() *models.BlogPost {
	return &models.BlogPost{
		Title:    "Scaling Web Applications",
		Excerpt:  "Notes on horizontal scaling",
		Content:  "Long form content about databases and caching",
		Author:   models.Author{Name: "Jane Doe"},
		Category: "Web Development",
		Tags:     []string{"scaling", "databases"},
	}
}

func TestFilterCategorySubstring(t *testing.T) {
	post := samplePost()

	assert.True(t, Filter{Category: "web"}.Matches(post))
	assert.True(t, Filter{Category: "DEVELOPMENT"}.Matches(post))
	assert.False(t, Filter{Category: "design"}.Matches(post))
}

func TestFilterAuthorSubstring(t *testing.T) {
	post := samplePost()

	assert.True(t, Filter{Author: "jane"}.Matches(post))
	assert.True(t, Filter{Author: "DOE"}.Matches(post))
	assert.False(t, Filter{Author: "smith"}.Matches(post))
}

func TestFilterTagsIntersection(t *testing.T) {
	post := samplePost()

	assert.True(t, Filter{Tags: []string{"scaling"}}.Matches(post))
	assert.True(t, Filter{Tags: []string{"missing", "databases"}}.Matches(post))
	// Tag membership is exact, not case-folded.
	assert.False(t, Filter{Tags: []string{"Scaling"}}.Matches(post))
	assert.False(t, Filter{Tags: []string{"go"}}.Matches(post))
}

func TestFilterSearchTitleExcerptContent(t *testing.T) {
	post := samplePost()

	assert.True(t, Filter{Search: "scaling web"}.Matches(post))
	assert.True(t, Filter{Search: "HORIZONTAL"}.Matches(post))
	assert.True(t, Filter{Search: "caching"}.Matches(post))
	// Search does not look at category, tags or author.
	assert.False(t, Filter{Search: "jane"}.Matches(post))
}

func TestFilterQueryFullText(t *testing.T) {
	post := samplePost()

	assert.True(t, Filter{Query: "jane"}.Matches(post))
	assert.True(t, Filter{Query: "web develop"}.Matches(post))
	assert.True(t, Filter{Query: "DATABASES"}.Matches(post))
	assert.False(t, Filter{Query: "kubernetes"}.Matches(post))
}

func TestFilterConjunction(t *testing.T) {
	post := samplePost()

	assert.True(t, Filter{Category: "web", Author: "jane"}.Matches(post))
	assert.False(t, Filter{Category: "web", Author: "smith"}.Matches(post))
}

func TestFilterIsZero(t *testing.T) {
	assert.True(t, Filter{}.IsZero())
	assert.False(t, Filter{Search: "x"}.IsZero())
}

func TestSortNewestFirst(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	posts := []*models.BlogPost{
		{ID: "post-a", CreatedAt: base},
		{ID: "post-c", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "post-b", CreatedAt: base.Add(time.Hour)},
	}

	SortNewestFirst(posts)

	assert.Equal(t, "post-c", posts[0].ID)
	assert.Equal(t, "post-b", posts[1].ID)
	assert.Equal(t, "post-a", posts[2].ID)
}

func TestSortNewestFirstTieBreak(t *testing.T) {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	posts := []*models.BlogPost{
		{ID: "post-a", CreatedAt: ts},
		{ID: "post-b", CreatedAt: ts},
	}

	SortNewestFirst(posts)

	assert.Equal(t, "post-b", posts[0].ID)
	assert.Equal(t, "post-a", posts[1].ID)
}

func TestPaginate(t *testing.T) {
	posts := make([]*models.BlogPost, 5)
	for i := range posts {
		posts[i] = &models.BlogPost{}
	}

	assert.Len(t, Paginate(posts, 0, 2), 2)
	assert.Len(t, Paginate(posts, 4, 2), 1)
	assert.Empty(t, Paginate(posts, 10, 2), "skip past the end yields an empty page")
	assert.Len(t, Paginate(posts, 0, 0), 5, "zero limit returns everything")
}
