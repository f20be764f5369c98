package repository

import (
	"context"
)

// RepositoryFactory creates repository instances bound to one transaction.
// The identity sync handlers use it for their read-then-write sequences so an
// out-of-order update cannot race its own synthesized create.
type RepositoryFactory interface {
	UserRepo() UserRepository
}

// TransactionManager runs a function within a single database transaction.
// The function receives a factory whose repositories all share that
// transaction; any returned error rolls the whole unit back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
