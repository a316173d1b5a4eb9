package repository

import "context"

// RepositoryFactory creates repository instances bound to a single transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	ContactRepo() ContactRepository
}

// TransactionManager runs a function within a single database transaction.
// Repositories obtained from the factory share that transaction; returning an
// error rolls everything back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
