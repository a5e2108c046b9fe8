package identity

import "context"

// Repository is the durable user store. ListByRole pages through users of one
// role in registration order and reports the total count.
type Repository interface {
	Create(ctx context.Context, u *User) error
	ListByRole(ctx context.Context, role string, limit, offset int) ([]*User, int, error)
}
