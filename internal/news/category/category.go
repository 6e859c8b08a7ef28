// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

// Package category manages the editorial taxonomy articles are filed under.
//
// Categories form a shallow tree via an optional parent reference; the
// service layer guarantees the tree stays acyclic.
package category

import "time"

// Category is a named taxonomy node.
type Category struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	ParentID    *int      `json:"parentId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Patch describes a partial update to a [Category]. Nil fields are preserved.
//
// ClearParent detaches the node from its parent; it exists because a nil
// ParentID in a patch is indistinguishable from "leave it alone".
type Patch struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	ParentID    *int    `json:"parentId"`
	ClearParent bool    `json:"clearParent,omitempty"`
}

// Field identifiers for validation errors.
const (
	FieldName     = "name"
	FieldSlug     = "slug"
	FieldParentID = "parentId"
)
