package repositories

import (
	"sort"
	"strings"

	"codenix/app/models"
)

// Filter describes the conjunctive match criteria of a list query. Zero
// values mean "no constraint". Matching follows the public API contract:
// plain case-insensitive substring checks, no ranking.
type Filter struct {
	// Category matches as a case-insensitive substring of the post
	// category.
	Category string
	// Author matches as a case-insensitive substring of the author name.
	Author string
	// Tags matches when the post's tag list intersects this set (exact,
	// case-sensitive membership).
	Tags []string
	// Search matches as a case-insensitive substring of any of title,
	// excerpt or content.
	Search string
	// Query is the full-text variant of Search: it additionally matches
	// category, tags and author name.
	Query string
}

// IsZero reports whether the filter constrains nothing.
func (f Filter) IsZero() bool {
	return f.Category == "" && f.Author == "" && len(f.Tags) == 0 &&
		f.Search == "" && f.Query == ""
}

// Matches reports whether the post satisfies every supplied criterion.
func (f Filter) Matches(p *models.BlogPost) bool {
	if f.Category != "" && !containsFold(p.Category, f.Category) {
		return false
	}
	if f.Author != "" && !containsFold(p.Author.Name, f.Author) {
		return false
	}
	if len(f.Tags) > 0 && !intersects(p.Tags, f.Tags) {
		return false
	}
	if f.Search != "" && !matchesSearch(p, f.Search) {
		return false
	}
	if f.Query != "" && !matchesQuery(p, f.Query) {
		return false
	}
	return true
}

func matchesSearch(p *models.BlogPost, q string) bool {
	return containsFold(p.Title, q) ||
		containsFold(p.Excerpt, q) ||
		containsFold(p.Content, q)
}

func matchesQuery(p *models.BlogPost, q string) bool {
	if matchesSearch(p, q) {
		return true
	}
	if containsFold(p.Category, q) || containsFold(p.Author.Name, q) {
		return true
	}
	for _, tag := range p.Tags {
		if containsFold(tag, q) {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func intersects(tags, wanted []string) bool {
	for _, w := range wanted {
		for _, t := range tags {
			if t == w {
				return true
			}
		}
	}
	return false
}

// SortNewestFirst orders posts by creation time descending. Posts created
// in the same instant are tie-broken by id so pagination stays stable.
func SortNewestFirst(posts []*models.BlogPost) {
	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].ID > posts[j].ID
	})
}

// Paginate slices one page out of an already-sorted result set.
func Paginate(posts []*models.BlogPost, skip, limit int) []*models.BlogPost {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(posts) {
		return []*models.BlogPost{}
	}
	end := len(posts)
	if limit > 0 && skip+limit < end {
		end = skip + limit
	}
	return posts[skip:end]
}
