package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPost() *BlogPost {
	return &BlogPost{
		Title:    "Test Post",
		Slug:     "test-post",
		Excerpt:  "A short excerpt",
		Content:  "Some long-form content",
		Author:   Author{Name: "Jane Doe"},
		Category: "Engineering",
		Tags:     []string{"go", "testing"},
	}
}

func TestBlogPostValidate(t *testing.T) {
	assert.NoError(t, validPost().Validate())
}

func TestBlogPostValidateRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BlogPost)
	}{
		{"missing title", func(p *BlogPost) { p.Title = "" }},
		{"missing slug", func(p *BlogPost) { p.Slug = "" }},
		{"missing excerpt", func(p *BlogPost) { p.Excerpt = "" }},
		{"missing content", func(p *BlogPost) { p.Content = "" }},
		{"missing category", func(p *BlogPost) { p.Category = "" }},
		{"missing author name", func(p *BlogPost) { p.Author.Name = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := validPost()
			tt.mutate(post)
			assert.Error(t, post.Validate())
		})
	}
}

func TestNormalize(t *testing.T) {
	post := validPost()
	post.Title = "  Test Post  "
	post.Author.Name = "  Jane Doe  "
	post.Normalize()

	assert.Equal(t, "Test Post", post.Title)
	assert.Equal(t, "Jane Doe", post.Author.Name)
}

func TestNormalizeEmptiesWhitespaceOnlyFields(t *testing.T) {
	post := validPost()
	post.Author.Name = "   "
	post.Normalize()

	assert.Empty(t, post.Author.Name)
	assert.Error(t, post.Validate())
}

func TestBeforeCreate(t *testing.T) {
	post := validPost()
	post.Author.Name = "  Jane Doe  "
	post.BeforeCreate()

	assert.Equal(t, "Jane Doe", post.Author.Name)
	assert.False(t, post.CreatedAt.IsZero())
	assert.Equal(t, post.CreatedAt, post.UpdatedAt)
}

func TestBeforeCreatePreservesTimestamps(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	post := validPost()
	post.CreatedAt = created
	post.BeforeCreate()

	assert.Equal(t, created, post.CreatedAt)
	assert.Equal(t, created, post.UpdatedAt)
}

func TestFeaturedProjection(t *testing.T) {
	post := validPost()
	post.ID = "post-abc"
	post.FeaturedImage = "https://example.com/cover.png"
	post.BeforeCreate()

	featured := post.Featured()
	assert.Equal(t, post.ID, featured.ID)
	assert.Equal(t, post.Title, featured.Title)
	assert.Equal(t, post.Slug, featured.Slug)
	assert.Equal(t, post.FeaturedImage, featured.FeaturedImage)
	assert.Equal(t, post.CreatedAt, featured.CreatedAt)
}

func TestBlogUpdateApply(t *testing.T) {
	post := validPost()
	post.BeforeCreate()

	title := "New Title"
	tags := []string{"updated"}
	update := &BlogUpdate{Title: &title, Tags: &tags}
	update.Apply(post)

	assert.Equal(t, "New Title", post.Title)
	assert.Equal(t, []string{"updated"}, post.Tags)
	// Untouched fields survive.
	assert.Equal(t, "test-post", post.Slug)
	assert.Equal(t, "Engineering", post.Category)
}

func TestCloneIsDeep(t *testing.T) {
	post := validPost()
	post.SEO = &SEO{Keywords: []string{"go"}}
	clone := post.Clone()

	require.NotSame(t, post, clone)
	clone.Tags[0] = "changed"
	clone.SEO.Keywords[0] = "changed"

	assert.Equal(t, "go", post.Tags[0])
	assert.Equal(t, "go", post.SEO.Keywords[0])
}
