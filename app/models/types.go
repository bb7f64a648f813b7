package models

import "time"

// BlogPost represents a published article in the blog collection.
type BlogPost struct {
	ID            string    `json:"id" validate:"-"`
	Title         string    `json:"title" validate:"required,min=1,max=200"`
	Slug          string    `json:"slug" validate:"required,min=1,max=200"`
	Excerpt       string    `json:"excerpt" validate:"required,min=1"`
	Content       string    `json:"content" validate:"required,min=1"`
	Author        Author    `json:"author"`
	Category      string    `json:"category" validate:"required,min=1"`
	Tags          []string  `json:"tags" validate:"-"`
	FeaturedImage string    `json:"featuredImage,omitempty"`
	SEO           *SEO      `json:"seo,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Author is the embedded author block of a blog post.
type Author struct {
	Name   string `json:"name" validate:"required,min=1,max=100"`
	Avatar string `json:"avatar,omitempty" validate:"omitempty,url"`
}

// SEO holds the optional search-engine metadata of a post.
type SEO struct {
	MetaTitle       string   `json:"metaTitle,omitempty"`
	MetaDescription string   `json:"metaDescription,omitempty"`
	Keywords        []string `json:"keywords,omitempty"`
}

// FeaturedPost is the reduced projection returned by the featured listing.
// It deliberately carries no Content field.
type FeaturedPost struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Excerpt       string    `json:"excerpt"`
	Author        Author    `json:"author"`
	Category      string    `json:"category"`
	FeaturedImage string    `json:"featuredImage,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
