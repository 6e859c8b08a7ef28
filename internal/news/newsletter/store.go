// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package newsletter

import "context"

// Repository defines the data access contract for newsletter subscribers.
//
// The dedup rule lives here rather than in the service: Subscribe is
// idempotent by construction in every implementation.
type Repository interface {

	/*
		Subscribe registers a subscriber.

		Description: Subscribing an email that is already active returns the
		existing record unchanged; the incoming name and confirmation flag are
		ignored. Subscribing a previously-unsubscribed email clears the flag
		and refreshes the subscription date, keeping the original name and
		confirmation status. Only a brand-new email allocates a new id.

		Parameters:
		  - ctx: context.Context
		  - subscriber: *Subscriber (Email, Name, Confirmed; the rest is ignored)

		Returns:
		  - *Subscriber: The active subscription record
		  - error: Storage failures
	*/
	Subscribe(ctx context.Context, subscriber *Subscriber) (*Subscriber, error)

	/*
		Unsubscribe marks the subscription for email as unsubscribed.

		Description: Succeeds for any known email, including one that is
		already unsubscribed, so repeated unsubscribes are idempotent.

		Returns:
		  - bool: Whether a record with that email exists
		  - error: Storage failures
	*/
	Unsubscribe(ctx context.Context, email string) (bool, error)

	// FindAll returns every subscriber record, unsubscribed included, in id
	// order.
	FindAll(ctx context.Context) ([]*Subscriber, error)
}
