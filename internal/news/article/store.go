// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package article

import "context"

// # Article Data Access

// Repository defines the data access contract for the article domain.
//
// Two conforming implementations ship with the platform: the in-memory
// reference store ([MemoryStore]) and a PostgreSQL store ([PostgresRepository]).
// "Not found" is always a signaled [apperr.AppError], never a panic.
type Repository interface {

	/*
		FindByID returns the article with the given id.

		Parameters:
		  - context: context.Context
		  - id: int

		Returns:
		  - *Article: The hydrated domain entity
		  - error: apperr.NotFound if missing
	*/
	FindByID(context context.Context, id int) (*Article, error)

	/*
		FindBySlug returns the article matching the unique URL identifier.

		Parameters:
		  - context: context.Context
		  - slug: string

		Returns:
		  - *Article: The hydrated domain entity
		  - error: apperr.NotFound if missing
	*/
	FindBySlug(context context.Context, slug string) (*Article, error)

	/*
		List returns a filtered, paginated slice of articles and the total count.

		Description: Filters are combined with logical AND, the result is
		sorted descending by effective date (publishedAt else createdAt), and
		an out-of-range page yields an empty slice, never an error.

		Parameters:
		  - context: context.Context
		  - filter: Filter (category, tag, featured, state)
		  - limit: int
		  - offset: int

		Returns:
		  - []*Article: The page slice
		  - int: Total count after filtering, before pagination
		  - error: Storage retrieval failures
	*/
	List(context context.Context, filter Filter, limit, offset int) ([]*Article, int, error)

	/*
		Create persists a new article.

		Description: Assigns the next sequential id (monotonically increasing,
		never reused), zeroes the view counter, and stamps createdAt/updatedAt.
		The generated fields are written back onto the passed entity.

		Parameters:
		  - context: context.Context
		  - article: *Article

		Returns:
		  - error: Storage failures
	*/
	Create(context context.Context, article *Article) error

	/*
		Update merges a partial patch over the existing record field-by-field.

		Description: Nil patch fields are preserved, id is immutable, and
		updatedAt is stamped. Absence is signaled, not thrown.

		Parameters:
		  - context: context.Context
		  - id: int
		  - patch: Patch

		Returns:
		  - *Article: The updated entity
		  - error: apperr.NotFound if missing
	*/
	Update(context context.Context, id int, patch Patch) (*Article, error)

	/*
		Delete removes the article and cascades to all of its revisions.

		Parameters:
		  - context: context.Context
		  - id: int

		Returns:
		  - bool: Whether anything was deleted (false = not found, not an error)
		  - error: Storage failures
	*/
	Delete(context context.Context, id int) (bool, error)

	/*
		Search returns published articles matching the query.

		Description: Case-insensitive substring containment over title,
		content, excerpt, tags, and categories; title matches rank first,
		ties preserve collection order.

		Parameters:
		  - context: context.Context
		  - query: string
		  - limit: int

		Returns:
		  - []*Article: At most limit ranked matches
		  - error: Storage failures
	*/
	Search(context context.Context, query string, limit int) ([]*Article, error)

	/*
		IncrementViews adds delta to the article's view counter.

		Description: The counter is an analytics metric; the merge does not
		touch updatedAt.

		Parameters:
		  - context: context.Context
		  - id: int
		  - delta: int

		Returns:
		  - error: apperr.NotFound if missing
	*/
	IncrementViews(context context.Context, id int, delta int) error
}

// # Revision Data Access

// RevisionRepository defines the data access contract for article revisions.
type RevisionRepository interface {

	/*
		FindByArticle returns all revisions of an article, newest first.

		Description: An article with no revisions (or a deleted article)
		yields an empty slice, not an error.
	*/
	FindByArticle(context context.Context, articleID int) ([]*Revision, error)

	/*
		Create persists a new immutable revision snapshot, assigning the next
		sequential revision id and stamping createdAt.
	*/
	Create(context context.Context, revision *Revision) error
}
