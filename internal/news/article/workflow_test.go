// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package article_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthansbello/labarintech/internal/news/article"
	"github.com/matthansbello/labarintech/internal/platform/apperr"
)

func completeArticle(state article.State) *article.Article {
	return &article.Article{
		Title:      "Complete",
		Slug:       "complete",
		Content:    "Full body",
		State:      state,
		Categories: []string{"Programming"},
	}
}

/*
TestTransition_Matrix exercises every state/action pair of the publication
workflow.
*/
func TestTransition_Matrix(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name      string
		state     article.State
		action    article.Action
		wantState article.State
		wantErr   string // empty = success, else expected apperr code
	}{
		{"draft_submit", article.StateDraft, article.ActionSubmit, article.StatePendingReview, ""},
		{"pending_approve", article.StatePendingReview, article.ActionApprove, article.StateApproved, ""},
		{"draft_publish", article.StateDraft, article.ActionPublish, article.StatePublished, ""},
		{"pending_publish", article.StatePendingReview, article.ActionPublish, article.StatePublished, ""},
		{"approved_publish", article.StateApproved, article.ActionPublish, article.StatePublished, ""},

		{"published_submit", article.StatePublished, article.ActionSubmit, "", "UNPROCESSABLE"},
		{"approved_submit", article.StateApproved, article.ActionSubmit, "", "UNPROCESSABLE"},
		{"draft_approve", article.StateDraft, article.ActionApprove, "", "UNPROCESSABLE"},
		{"published_approve", article.StatePublished, article.ActionApprove, "", "UNPROCESSABLE"},
		{"published_publish", article.StatePublished, article.ActionPublish, "", "UNPROCESSABLE"},
		{"scheduled_publish", article.StateScheduled, article.ActionPublish, "", "UNPROCESSABLE"},
		{"scheduled_schedule", article.StateScheduled, article.ActionSchedule, "", "UNPROCESSABLE"},

		{"published_save_draft", article.StatePublished, article.ActionSaveDraft, article.StateDraft, ""},
		{"scheduled_save_draft", article.StateScheduled, article.ActionSaveDraft, article.StateDraft, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current := completeArticle(tt.state)
			result, err := article.Transition(current, tt.action, now)

			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.wantState, result.State)
				return
			}

			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, tt.wantErr, ae.Code)
		})
	}
}

/*
TestTransition_PublishStampsTime verifies a successful publish carries the
injected clock value.
*/
func TestTransition_PublishStampsTime(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	result, err := article.Transition(completeArticle(article.StateApproved), article.ActionPublish, now)
	require.NoError(t, err)
	require.NotNil(t, result.PublishedAt)
	assert.Equal(t, now, *result.PublishedAt)
}

/*
TestTransition_PublishValidation checks the completeness rules: publishing an
incomplete article names every missing field.
*/
func TestTransition_PublishValidation(t *testing.T) {
	incomplete := &article.Article{State: article.StateDraft}

	_, err := article.Transition(incomplete, article.ActionPublish, time.Now().UTC())
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)

	fields := make([]string, 0, len(ae.Details))
	for _, detail := range ae.Details {
		fields = append(fields, detail.Field)
	}
	assert.ElementsMatch(t, []string{"title", "content", "slug", "categories"}, fields)
}

/*
TestTransition_Schedule verifies the schedule-specific rules: a date is
required and must be in the future.
*/
func TestTransition_Schedule(t *testing.T) {
	now := time.Now().UTC()

	t.Run("missing_date", func(t *testing.T) {
		_, err := article.Transition(completeArticle(article.StateDraft), article.ActionSchedule, now)
		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		assert.Equal(t, "scheduledPublish", ae.Details[0].Field)
	})

	t.Run("past_date", func(t *testing.T) {
		current := completeArticle(article.StateDraft)
		past := now.Add(-time.Hour)
		current.ScheduledPublish = &past

		_, err := article.Transition(current, article.ActionSchedule, now)
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})

	t.Run("future_date", func(t *testing.T) {
		current := completeArticle(article.StateApproved)
		future := now.Add(time.Hour)
		current.ScheduledPublish = &future

		result, err := article.Transition(current, article.ActionSchedule, now)
		require.NoError(t, err)
		assert.Equal(t, article.StateScheduled, result.State)
		require.NotNil(t, result.ScheduledPublish)
		assert.Equal(t, future, *result.ScheduledPublish)
	})
}
