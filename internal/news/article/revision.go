// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package article

import "time"

// Revision is an immutable snapshot of an article's content at a point in time.
//
// Revisions are owned strictly by their article: deleting the parent article
// cascades to every revision, leaving no orphans.
type Revision struct {
	ID        int       `json:"id"`
	ArticleID int       `json:"articleId"`
	Content   string    `json:"content"`
	AuthorID  int       `json:"authorId,omitempty"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
