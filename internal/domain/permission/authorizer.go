package permission

import "context"

// Resources and actions known to the authorizer.
const (
	ResourceTicket        = "ticket"
	ResourceReview        = "review"
	ResourceReviewRequest = "review_request"

	ActionCreate = "create"
	ActionEdit   = "edit"
	ActionDelete = "delete"
)

// Authorizer answers whether a user may perform an action on a
// resource type. Ownership checks remain with the entities; this port
// covers role and capability policy.
type Authorizer interface {
	Can(ctx context.Context, userID uint, resource, action string) (bool, error)
}
