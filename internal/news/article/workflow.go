// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package article

import (
	"fmt"
	"time"

	"github.com/matthansbello/labarintech/internal/platform/apperr"
	"github.com/matthansbello/labarintech/internal/platform/validate"
)

// # Publication Workflow

// Action names an editorial operation that drives the publication workflow.
//
// Actions are initiated externally (an editor clicking "Publish"); this
// package only validates and applies them.
type Action string

const (
	// ActionSaveDraft returns the article to draft from any state. It is
	// always legal and bypasses the publish-time completeness validation.
	ActionSaveDraft Action = "save_draft"

	// ActionSubmit moves a draft into editorial review.
	ActionSubmit Action = "submit"

	// ActionApprove records an editor's sign-off on a pending article.
	ActionApprove Action = "approve"

	// ActionPublish makes the article live immediately.
	ActionPublish Action = "publish"

	// ActionSchedule queues the article for future publication.
	ActionSchedule Action = "schedule"
)

// TransitionResult carries the new state plus any derived fields produced by
// a successful workflow transition.
type TransitionResult struct {
	State            State
	PublishedAt      *time.Time
	ScheduledPublish *time.Time
}

/*
Transition validates an editorial action against the article's current fields
and computes the resulting state.

Description: This is a pure function — it never persists. On success the
caller applies the result via the storage engine; on failure the stored
article is untouched by construction.

Parameters:
  - current: *Article (the article as currently persisted, with any staged
    scheduling input already set on ScheduledPublish)
  - action: Action
  - now: time.Time (injected clock for publishedAt stamping and schedule checks)

Returns:
  - TransitionResult: New state and derived publication fields
  - error: VALIDATION_ERROR naming the missing field, or UNPROCESSABLE for an
    illegal state/action pair
*/
func Transition(current *Article, action Action, now time.Time) (TransitionResult, error) {
	switch action {

	case ActionSaveDraft:
		// Save-as-draft is the universal escape hatch; drafts may be incomplete.
		return TransitionResult{State: StateDraft}, nil

	case ActionSubmit:
		if current.State != StateDraft {
			return TransitionResult{}, illegalTransition(current.State, action)
		}
		return TransitionResult{State: StatePendingReview}, nil

	case ActionApprove:
		if current.State != StatePendingReview {
			return TransitionResult{}, illegalTransition(current.State, action)
		}
		return TransitionResult{State: StateApproved}, nil

	case ActionPublish:
		if !isPrePublication(current.State) {
			return TransitionResult{}, illegalTransition(current.State, action)
		}
		if err := validateCompleteness(current); err != nil {
			return TransitionResult{}, err
		}
		publishedAt := now
		return TransitionResult{State: StatePublished, PublishedAt: &publishedAt}, nil

	case ActionSchedule:
		if !isPrePublication(current.State) {
			return TransitionResult{}, illegalTransition(current.State, action)
		}
		if err := validateCompleteness(current); err != nil {
			return TransitionResult{}, err
		}
		if current.ScheduledPublish == nil {
			return TransitionResult{}, validate.RequiredError(FieldScheduledPublish, "A schedule date is required")
		}
		if !current.ScheduledPublish.After(now) {
			return TransitionResult{}, validate.RequiredError(FieldScheduledPublish, "Schedule date must be in the future")
		}
		return TransitionResult{State: StateScheduled, ScheduledPublish: current.ScheduledPublish}, nil
	}

	return TransitionResult{}, apperr.Unprocessable(fmt.Sprintf("Unknown workflow action %q", action))
}

// isPrePublication reports whether state may transition directly to
// published or scheduled.
func isPrePublication(state State) bool {
	return state == StateDraft || state == StatePendingReview || state == StateApproved
}

// validateCompleteness enforces the publish-time completeness rules: title,
// content, slug, and at least one category must be present.
func validateCompleteness(current *Article) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, current.Title).
		Required(FieldContent, current.Content).
		Required(FieldSlug, current.Slug).
		Custom(FieldCategories, len(current.Categories) == 0, "At least one category is required")
	return validator.Err()
}

// illegalTransition builds the UNPROCESSABLE error for a state/action pair.
func illegalTransition(state State, action Action) error {
	return apperr.Unprocessable(fmt.Sprintf("Cannot %s an article in state %q", action, state))
}
