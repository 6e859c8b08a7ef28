// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

/*
Package article defines the core domain of the LabarinTech newsroom.

It manages the lifecycle of editorial content from first draft to scheduled
publication, including revision history and discovery metrics.

Core Responsibility:

  - Workflow: Defines the publication states (draft, pending_review, approved,
    published, scheduled) and the legal transitions between them.
  - Storage: Declares the repository contracts for articles and their
    revisions, with in-memory and PostgreSQL implementations.
  - Discovery: Filtered/paginated listing and relevance search over the
    published collection.

This package acts as the source of truth for all content-related data models.
*/
package article

import "time"

// # Domain Enums

// State represents the publication state of an article.
type State string

const (
	// StateDraft is the initial state; drafts may be incomplete.
	StateDraft State = "draft"

	// StatePendingReview marks an article submitted for editorial review.
	StatePendingReview State = "pending_review"

	// StateApproved marks an article signed off by an editor but not yet live.
	StateApproved State = "approved"

	// StatePublished marks an article visible to readers.
	StatePublished State = "published"

	// StateScheduled marks an article queued for future publication.
	StateScheduled State = "scheduled"
)

// IsValid reports whether s is a recognised [State] value.
func (s State) IsValid() bool {
	switch s {
	case
		StateDraft,
		StatePendingReview,
		StateApproved,
		StatePublished,
		StateScheduled:
		return true
	}
	return false
}

// # Core Entities

// Article is the central aggregate of the LabarinTech domain.
//
// Identity is an integer id assigned by the storage engine at creation,
// strictly increasing and never reused, even after deletion.
type Article struct {
	ID              int        `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"` // URL-safe identifier, unique across articles
	Excerpt         string     `json:"excerpt,omitempty"`
	Content         string     `json:"content"` // Rich text / HTML from the editor
	AuthorID        int        `json:"authorId,omitempty"`
	State           State      `json:"state"`
	FeaturedImage   string     `json:"featuredImage,omitempty"`
	Categories      []string   `json:"categories"`
	Tags            []string   `json:"tags,omitempty"`
	Views           int        `json:"views"`
	Featured        bool       `json:"featured"`
	MetaDescription string     `json:"metaDescription,omitempty"`
	PublishedAt     *time.Time `json:"publishedAt,omitempty"`      // Set when the article transitions to published
	ScheduledPublish *time.Time `json:"scheduledPublish,omitempty"` // Only meaningful when state = scheduled
	ExternalID      string     `json:"externalId,omitempty"` // Reference into the external identity/content provider
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// EffectiveDate returns the timestamp used for chronological ordering:
// the publication time when available, otherwise the creation time.
func (a *Article) EffectiveDate() time.Time {
	if a.PublishedAt != nil {
		return *a.PublishedAt
	}
	return a.CreatedAt
}

// # Partial Updates

// Patch describes a partial update to an [Article].
//
// Nil fields are preserved on the stored record; non-nil fields overwrite.
// The id and the view counter are never patchable, and UpdatedAt is stamped
// by the storage engine on every merge.
type Patch struct {
	Title            *string    `json:"title"`
	Slug             *string    `json:"slug"`
	Excerpt          *string    `json:"excerpt"`
	Content          *string    `json:"content"`
	AuthorID         *int       `json:"authorId"`
	State            *State     `json:"state"`
	FeaturedImage    *string    `json:"featuredImage"`
	Categories       *[]string  `json:"categories"`
	Tags             *[]string  `json:"tags"`
	Featured         *bool      `json:"featured"`
	MetaDescription  *string    `json:"metaDescription"`
	PublishedAt      *time.Time `json:"publishedAt"`
	ScheduledPublish *time.Time `json:"scheduledPublish"`
	ExternalID       *string    `json:"externalId"`
}

// # Search & Filtering

// Filter holds the parameters for a filtered article list query.
//
// All provided criteria are combined with logical AND.
type Filter struct {
	// Category keeps only articles whose categories set contains the name.
	Category string `json:"category,omitempty"`

	// Tag keeps only articles whose tags set contains the value.
	Tag string `json:"tag,omitempty"`

	// Featured keeps only featured articles when true.
	Featured bool `json:"featured,omitempty"`

	// State keeps only articles in the exact publication state.
	State State `json:"state,omitempty"`
}

// # Field Identifiers

// Global field names for validation and JSON mapping.
const (
	FieldTitle            = "title"
	FieldSlug             = "slug"
	FieldExcerpt          = "excerpt"
	FieldContent          = "content"
	FieldAuthorID         = "authorId"
	FieldState            = "state"
	FieldCategories       = "categories"
	FieldTags             = "tags"
	FieldScheduledPublish = "scheduledPublish"
	FieldQuery            = "q"
)
