// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

// Package newsletter manages reader email subscriptions.
package newsletter

import "time"

// Subscriber is a newsletter recipient keyed by email.
//
// Unsubscribing sets Unsubscribed rather than deleting the record, so a
// returning reader keeps their original id, name, and confirmation status.
type Subscriber struct {
	ID               int       `json:"id"`
	Email            string    `json:"email"`
	Name             string    `json:"name,omitempty"`
	SubscriptionDate time.Time `json:"subscriptionDate"`
	Confirmed        bool      `json:"confirmed"`
	Unsubscribed     bool      `json:"unsubscribed"`
}

// FieldEmail is the validation field identifier for the email address.
const FieldEmail = "email"
