package models

import "strings"

// BlogUpdate describes a partial update to a blog post. Nil fields are
// left untouched.
type BlogUpdate struct {
	Title         *string   `json:"title"`
	Slug          *string   `json:"slug"`
	Excerpt       *string   `json:"excerpt"`
	Content       *string   `json:"content"`
	Author        *Author   `json:"author"`
	Category      *string   `json:"category"`
	Tags          *[]string `json:"tags"`
	FeaturedImage *string   `json:"featuredImage"`
	SEO           *SEO      `json:"seo"`
}

// Apply copies the set fields of the update onto the post.
func (u *BlogUpdate) Apply(p *BlogPost) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Slug != nil {
		p.Slug = *u.Slug
	}
	if u.Excerpt != nil {
		p.Excerpt = *u.Excerpt
	}
	if u.Content != nil {
		p.Content = *u.Content
	}
	if u.Author != nil {
		p.Author = *u.Author
		p.Author.Name = strings.TrimSpace(p.Author.Name)
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Tags != nil {
		p.Tags = append([]string(nil), (*u.Tags)...)
	}
	if u.FeaturedImage != nil {
		p.FeaturedImage = *u.FeaturedImage
	}
	if u.SEO != nil {
		seo := *u.SEO
		p.SEO = &seo
	}
}
