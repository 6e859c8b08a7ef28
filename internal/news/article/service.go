// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package article

import (
	"context"
	"log/slog"
	"time"

	"github.com/matthansbello/labarintech/internal/platform/apperr"
	"github.com/matthansbello/labarintech/internal/platform/validate"
	"github.com/matthansbello/labarintech/pkg/pagination"
	"github.com/matthansbello/labarintech/pkg/slug"
)

// # Article Service

// Service implements the editorial business logic on top of the storage
// contracts.
//
// Slug uniqueness is enforced here rather than in storage: the service probes
// with FindBySlug before every create and slug change, so both storage engines
// share one conflict policy.
type Service struct {
	articles  Repository
	revisions RevisionRepository
	logger    *slog.Logger

	// now is the injected clock for publication stamping.
	now func() time.Time
}

// NewService creates the article service.
func NewService(articles Repository, revisions RevisionRepository, logger *slog.Logger) *Service {
	return &Service{
		articles:  articles,
		revisions: revisions,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

/*
CreateArticle validates and persists a new article.

Description: Missing slugs are derived from the title, missing states default
to draft. Title and content are required at creation; the remaining
completeness rules (categories) only apply at publish time.

Parameters:
  - ctx: context.Context
  - draft: *Article (client-supplied fields; id, views, timestamps are ignored)

Returns:
  - *Article: The persisted article with generated fields filled in
  - error: VALIDATION_ERROR or CONFLICT on a duplicate slug
*/
func (s *Service) CreateArticle(ctx context.Context, draft *Article) (*Article, error) {
	if draft.Slug == "" && draft.Title != "" {
		draft.Slug = slug.From(draft.Title)
	}
	if draft.State == "" {
		draft.State = StateDraft
	}
	if draft.Categories == nil {
		draft.Categories = []string{}
	}

	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, draft.Title).
		MaxLen(FieldTitle, draft.Title, 200).
		Required(FieldContent, draft.Content).
		Required(FieldSlug, draft.Slug).
		Custom(FieldState, !draft.State.IsValid(), "Unknown publication state")
	if draft.Slug != "" {
		validator.Slug(FieldSlug, draft.Slug)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := s.ensureSlugFree(ctx, draft.Slug, 0); err != nil {
		return nil, err
	}

	if err := s.articles.Create(ctx, draft); err != nil {
		return nil, apperr.Internal(err)
	}

	s.logger.InfoContext(ctx, "article_created",
		slog.Int("article_id", draft.ID),
		slog.String("slug", draft.Slug),
		slog.String("state", string(draft.State)),
	)

	return draft, nil
}

// GetArticle returns the article with the given id.
func (s *Service) GetArticle(ctx context.Context, id int) (*Article, error) {
	return s.articles.FindByID(ctx, id)
}

// GetArticleBySlug returns the article matching the URL slug.
func (s *Service) GetArticleBySlug(ctx context.Context, slugValue string) (*Article, error) {
	return s.articles.FindBySlug(ctx, slugValue)
}

/*
ListArticles returns a filtered page of articles with pagination metadata.

Parameters:
  - ctx: context.Context
  - filter: Filter
  - params: pagination.Params (already clamped by the transport layer)

Returns:
  - []*Article: The page slice, newest first by effective date
  - pagination.Meta: page/limit/total/totalPages
  - error: Storage failures
*/
func (s *Service) ListArticles(ctx context.Context, filter Filter, params pagination.Params) ([]*Article, pagination.Meta, error) {
	if filter.State != "" && !filter.State.IsValid() {
		return nil, pagination.Meta{}, validate.RequiredError(FieldState, "Unknown publication state")
	}

	articles, total, err := s.articles.List(ctx, filter, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, apperr.Internal(err)
	}

	return articles, pagination.NewMeta(params.Page, params.Limit, total), nil
}

/*
SearchArticles returns published articles ranked by relevance.

Description: Title matches outrank body matches; ties keep collection order.
A limit of zero falls back to the default page size.
*/
func (s *Service) SearchArticles(ctx context.Context, query string, limit int) ([]*Article, error) {
	if limit <= 0 || limit > pagination.MaxLimit {
		limit = pagination.DefaultLimit
	}

	articles, err := s.articles.Search(ctx, query, limit)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return articles, nil
}

/*
UpdateArticle merges a partial patch into an existing article.

Description: When the patch rewrites the content, the previous content is
snapshotted as a revision before the merge, so history survives edits. Slug
changes re-run the uniqueness probe.

Parameters:
  - ctx: context.Context
  - id: int
  - patch: Patch
  - editorID: int (recorded on the revision snapshot; zero for anonymous)

Returns:
  - *Article: The updated article
  - error: NOT_FOUND, VALIDATION_ERROR, or CONFLICT
*/
func (s *Service) UpdateArticle(ctx context.Context, id int, patch Patch, editorID int) (*Article, error) {
	current, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	validator := &validate.Validator{}
	if patch.Title != nil {
		validator.Required(FieldTitle, *patch.Title).MaxLen(FieldTitle, *patch.Title, 200)
	}
	if patch.Slug != nil {
		validator.Required(FieldSlug, *patch.Slug).Slug(FieldSlug, *patch.Slug)
	}
	if patch.State != nil {
		validator.Custom(FieldState, !patch.State.IsValid(), "Unknown publication state")
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if patch.Slug != nil && *patch.Slug != current.Slug {
		if err := s.ensureSlugFree(ctx, *patch.Slug, id); err != nil {
			return nil, err
		}
	}

	if patch.Content != nil && *patch.Content != current.Content {
		revision := &Revision{
			ArticleID: id,
			Content:   current.Content,
			AuthorID:  editorID,
			Note:      "Content updated",
		}
		if err := s.revisions.Create(ctx, revision); err != nil {
			return nil, apperr.Internal(err)
		}
	}

	updated, err := s.articles.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "article_updated", slog.Int("article_id", id))

	return updated, nil
}

// DeleteArticle removes the article and its revision history.
func (s *Service) DeleteArticle(ctx context.Context, id int) error {
	deleted, err := s.articles.Delete(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if !deleted {
		return apperr.NotFound("Article")
	}

	s.logger.InfoContext(ctx, "article_deleted", slog.Int("article_id", id))

	return nil
}

/*
ApplyTransition runs a workflow action against the stored article and persists
the outcome.

Description: The transition is computed purely against the current record; if
it fails, nothing is written, so the stored state is untouched.

Parameters:
  - ctx: context.Context
  - id: int
  - action: Action
  - scheduledAt: *time.Time (required staging input for ActionSchedule)

Returns:
  - *Article: The article in its new state
  - error: NOT_FOUND, VALIDATION_ERROR (incomplete for publication), or
    UNPROCESSABLE (illegal state/action pair)
*/
func (s *Service) ApplyTransition(ctx context.Context, id int, action Action, scheduledAt *time.Time) (*Article, error) {
	current, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if scheduledAt != nil {
		current.ScheduledPublish = scheduledAt
	}

	result, err := Transition(current, action, s.now())
	if err != nil {
		return nil, err
	}

	patch := Patch{State: &result.State}
	if result.PublishedAt != nil {
		patch.PublishedAt = result.PublishedAt
	}
	if result.ScheduledPublish != nil {
		patch.ScheduledPublish = result.ScheduledPublish
	}

	updated, err := s.articles.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "article_transitioned",
		slog.Int("article_id", id),
		slog.String("action", string(action)),
		slog.String("state", string(result.State)),
	)

	return updated, nil
}

// ListRevisions returns the revision history of an existing article, newest
// first.
func (s *Service) ListRevisions(ctx context.Context, articleID int) ([]*Revision, error) {
	if _, err := s.articles.FindByID(ctx, articleID); err != nil {
		return nil, err
	}

	revisions, err := s.revisions.FindByArticle(ctx, articleID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return revisions, nil
}

// RecordView bumps the article's view counter by one.
func (s *Service) RecordView(ctx context.Context, id int) error {
	return s.articles.IncrementViews(ctx, id, 1)
}

// ensureSlugFree probes for an existing article with the slug; excludeID
// skips the article being updated.
func (s *Service) ensureSlugFree(ctx context.Context, slugValue string, excludeID int) error {
	existing, err := s.articles.FindBySlug(ctx, slugValue)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil
		}
		return apperr.Internal(err)
	}
	if existing.ID != excludeID {
		return apperr.Conflict("An article with this slug already exists")
	}

	return nil
}
