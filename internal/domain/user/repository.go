package user

import "context"

// UserRepository defines the persistence port for accounts.
type UserRepository interface {
	Save(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
