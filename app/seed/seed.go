// Package seed loads a starter set of blog posts into an empty store.
package seed

import (
	"errors"
	"fmt"
	"log/slog"

	"codenix/app/models"
	"codenix/app/repositories"
)

// Run inserts the sample posts, skipping any slug that already exists, so
// seeding is safe to re-run.
func Run(repo repositories.BlogRepository, logger *slog.Logger) error {
	for _, post := range SamplePosts() {
		_, err := repo.GetBySlug(post.Slug)
		if err == nil {
			logger.Info("skipping existing post", slog.String("slug", post.Slug))
			continue
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("checking slug %s: %w", post.Slug, err)
		}
		if err := repo.Create(post); err != nil {
			return fmt.Errorf("seeding post %s: %w", post.Slug, err)
		}
		logger.Info("seeded post", slog.String("slug", post.Slug), slog.String("id", post.ID))
	}
	return nil
}

// SamplePosts returns the starter content for a fresh installation.
func SamplePosts() []*models.BlogPost {
	return []*models.BlogPost{
		{
			Title:   "Designing Landing Pages That Convert",
			Slug:    "designing-landing-pages-that-convert",
			Excerpt: "A practical checklist for landing pages that turn visitors into leads.",
			Content: "<p>A landing page has one job. Every section either moves the visitor" +
				" toward the call to action or it gets cut. We walk through the checklist we" +
				" apply to every client project, from the hero headline down to the footer.</p>",
			Author:   models.Author{Name: "Maya Okafor"},
			Category: "Design",
			Tags:     []string{"ux", "conversion", "landing-pages"},
			SEO: &models.SEO{
				MetaTitle:       "Designing Landing Pages That Convert",
				MetaDescription: "A practical checklist for high-converting landing pages.",
				Keywords:        []string{"landing page", "conversion", "ux"},
			},
		},
		{
			Title:   "Choosing a Tech Stack for Your MVP",
			Slug:    "choosing-a-tech-stack-for-your-mvp",
			Excerpt: "How we pick boring, proven technology for first versions.",
			Content: "<p>The fastest way to sink an MVP is to spend its budget on" +
				" infrastructure. We default to boring technology and a single deployable" +
				" unit until the product earns more complexity.</p>",
			Author:   models.Author{Name: "Daniel Reyes"},
			Category: "Web Development",
			Tags:     []string{"mvp", "architecture"},
		},
		{
			Title:   "Why Your Agency Site Needs a Blog",
			Slug:    "why-your-agency-site-needs-a-blog",
			Excerpt: "Content is still the cheapest credible marketing channel.",
			Content: "<p>Portfolios show what you built; writing shows how you think." +
				" A modest posting cadence outperforms paid channels for the kind of" +
				" client work an agency actually wants.</p>",
			Author:   models.Author{Name: "Maya Okafor"},
			Category: "Marketing",
			Tags:     []string{"content", "seo"},
		},
		{
			Title:   "Shipping Accessible Interfaces by Default",
			Slug:    "shipping-accessible-interfaces-by-default",
			Excerpt: "Accessibility is cheaper when it is part of the definition of done.",
			Content: "<p>Retrofitting accessibility costs multiples of building it in." +
				" We cover the defaults we bake into every component library: focus" +
				" management, contrast budgets and semantic markup.</p>",
			Author:   models.Author{Name: "Priya Natarajan"},
			Category: "Design",
			Tags:     []string{"accessibility", "ux"},
		},
	}
}
