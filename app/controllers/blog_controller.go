package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"codenix/app/models"
	"codenix/app/repositories"
	"codenix/app/services"

	"github.com/gorilla/mux"
)

// BlogController handles HTTP requests for blog posts.
type BlogController struct {
	service *services.BlogService
}

// NewBlogController creates a new BlogController.
func NewBlogController(service *services.BlogService) *BlogController {
	return &BlogController{service: service}
}

// Create handles POST /api/blogs.
func (bc *BlogController) Create(w http.ResponseWriter, r *http.Request) {
	var post models.BlogPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		respondError(w, r, "Invalid request body",
			fmt.Errorf("%w: %v", services.ErrValidation, err))
		return
	}

	// Identity and timestamps are store-managed; anything the caller
	// supplies for them is discarded.
	post.ID = ""
	post.CreatedAt = time.Time{}
	post.UpdatedAt = time.Time{}

	if err := bc.service.CreatePost(&post); err != nil {
		respondError(w, r, createErrorMessage(err), err)
		return
	}
	respondData(w, http.StatusCreated, "Blog created successfully", &post)
}

// List handles GET /api/blogs with optional category, author, tags and
// search filters.
func (bc *BlogController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repositories.Filter{
		Category: q.Get("category"),
		Author:   q.Get("author"),
		Search:   q.Get("search"),
	}
	if tags := q.Get("tags"); tags != "" {
		filter.Tags = strings.Split(tags, ",")
	}

	bc.list(w, r, filter, "Error fetching blogs")
}

// Get handles GET /api/blogs/{id}.
func (bc *BlogController) Get(w http.ResponseWriter, r *http.Request) {
	post, err := bc.service.GetPost(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, r, fetchErrorMessage(err), err)
		return
	}
	respondData(w, http.StatusOK, "", post)
}

// GetBySlug handles GET /api/blogs/slug/{slug}.
func (bc *BlogController) GetBySlug(w http.ResponseWriter, r *http.Request) {
	post, err := bc.service.GetPostBySlug(mux.Vars(r)["slug"])
	if err != nil {
		respondError(w, r, fetchErrorMessage(err), err)
		return
	}
	respondData(w, http.StatusOK, "", post)
}

// Update handles PUT /api/blogs/{id}.
func (bc *BlogController) Update(w http.ResponseWriter, r *http.Request) {
	var changes models.BlogUpdate
	if err := json.NewDecoder(r.Body).Decode(&changes); err != nil {
		respondError(w, r, "Invalid request body",
			fmt.Errorf("%w: %v", services.ErrValidation, err))
		return
	}

	post, err := bc.service.UpdatePost(mux.Vars(r)["id"], &changes)
	if err != nil {
		respondError(w, r, updateErrorMessage(err), err)
		return
	}
	respondData(w, http.StatusOK, "Blog updated successfully", post)
}

// Delete handles DELETE /api/blogs/{id}.
func (bc *BlogController) Delete(w http.ResponseWriter, r *http.Request) {
	post, err := bc.service.DeletePost(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, r, deleteErrorMessage(err), err)
		return
	}
	respondData(w, http.StatusOK, "Blog deleted successfully", post)
}

// Featured handles GET /api/blogs/featured/posts. Without a limit
// parameter the service applies its configured default.
func (bc *BlogController) Featured(w http.ResponseWriter, r *http.Request) {
	limit := parseIntParam(r, "limit", 0)
	posts, err := bc.service.FeaturedPosts(limit)
	if err != nil {
		respondError(w, r, "Error fetching featured blogs", err)
		return
	}
	respondData(w, http.StatusOK, "", posts)
}

// Search handles GET /api/blogs/search/posts.
func (bc *BlogController) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	page := parseIntParam(r, "page", 1)
	limit := parseIntParam(r, "limit", services.DefaultPageSize)

	posts, pagination, err := bc.service.SearchPosts(q, page, limit)
	if err != nil {
		respondError(w, r, searchErrorMessage(err), err)
		return
	}
	respondPage(w, posts, pagination, q)
}

// Stats handles GET /api/blogs/stats/analytics.
func (bc *BlogController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := bc.service.Stats()
	if err != nil {
		respondError(w, r, "Error fetching blog statistics", err)
		return
	}
	respondData(w, http.StatusOK, "", stats)
}

// Categories handles GET /api/blogs/meta/categories.
func (bc *BlogController) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := bc.service.Categories()
	if err != nil {
		respondError(w, r, "Error fetching categories", err)
		return
	}
	respondData(w, http.StatusOK, "", categories)
}

// Tags handles GET /api/blogs/meta/tags.
func (bc *BlogController) Tags(w http.ResponseWriter, r *http.Request) {
	tags, err := bc.service.Tags()
	if err != nil {
		respondError(w, r, "Error fetching tags", err)
		return
	}
	respondData(w, http.StatusOK, "", tags)
}

// ByCategory handles GET /api/blogs/category/{category}.
func (bc *BlogController) ByCategory(w http.ResponseWriter, r *http.Request) {
	filter := repositories.Filter{Category: mux.Vars(r)["category"]}
	bc.list(w, r, filter, "Error fetching blogs by category")
}

// ByAuthor handles GET /api/blogs/author/{author}.
func (bc *BlogController) ByAuthor(w http.ResponseWriter, r *http.Request) {
	filter := repositories.Filter{Author: mux.Vars(r)["author"]}
	bc.list(w, r, filter, "Error fetching blogs by author")
}

// ByTag handles GET /api/blogs/tag/{tag}.
func (bc *BlogController) ByTag(w http.ResponseWriter, r *http.Request) {
	filter := repositories.Filter{Tags: []string{mux.Vars(r)["tag"]}}
	bc.list(w, r, filter, "Error fetching blogs by tag")
}

func (bc *BlogController) list(w http.ResponseWriter, r *http.Request, filter repositories.Filter, errMessage string) {
	page := parseIntParam(r, "page", 1)
	limit := parseIntParam(r, "limit", services.DefaultPageSize)

	posts, pagination, err := bc.service.ListPosts(filter, page, limit)
	if err != nil {
		respondError(w, r, errMessage, err)
		return
	}
	respondPage(w, posts, pagination, "")
}

// parseIntParam reads a numeric query parameter, falling back to the
// default on anything that does not parse.
func parseIntParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func createErrorMessage(err error) string {
	switch {
	case errors.Is(err, repositories.ErrSlugTaken):
		return "Blog with this slug already exists"
	case errors.Is(err, services.ErrValidation):
		return "Invalid blog post"
	default:
		return "Error creating blog"
	}
}

func updateErrorMessage(err error) string {
	switch {
	case errors.Is(err, repositories.ErrSlugTaken):
		return "Blog with this slug already exists"
	case errors.Is(err, repositories.ErrNotFound):
		return "Blog not found"
	case errors.Is(err, repositories.ErrInvalidID):
		return "Invalid blog id"
	case errors.Is(err, services.ErrValidation):
		return "Invalid blog update"
	default:
		return "Error updating blog"
	}
}

func fetchErrorMessage(err error) string {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return "Blog not found"
	case errors.Is(err, repositories.ErrInvalidID):
		return "Invalid blog id"
	default:
		return "Error fetching blog"
	}
}

func deleteErrorMessage(err error) string {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return "Blog not found"
	case errors.Is(err, repositories.ErrInvalidID):
		return "Invalid blog id"
	default:
		return "Error deleting blog"
	}
}

func searchErrorMessage(err error) string {
	if errors.Is(err, services.ErrSearchQueryRequired) {
		return "Search query is required"
	}
	return "Error searching blogs"
}
