package memory

import (
	"context"
	"errors"

	ports "blog-platform/internal/domain/ports/output"
	post_repository "blog-platform/internal/domain/ports/output/post"
	user_repository "blog-platform/internal/domain/ports/output/user"
)

var errTxClosed = errors.New("tx is closed")

// UnitOfWork gives all-or-nothing semantics by snapshotting the store on
// Begin and restoring it on Rollback. Transactions are not isolated from
// each other.
type UnitOfWork struct {
	store *Store
	log   ports.Logger
}

func NewUnitOfWork(store *Store, log ports.Logger) *UnitOfWork {
	return &UnitOfWork{store: store, log: log}
}

func (u *UnitOfWork) Begin(ctx context.Context) (ports.Transaction, error) {
	if err := u.store.takeFailure("begin"); err != nil {
		return nil, err
	}
	return &Transaction{
		store:    u.store,
		log:      u.log,
		snapshot: u.store.snapshot(),
	}, nil
}

type Transaction struct {
	store    *Store
	log      ports.Logger
	snapshot snapshot
	closed   bool
}

func (t *Transaction) PostRepository() post_repository.Repository {
	return NewPostRepository(t.store, t.log)
}

func (t *Transaction) UserRepository() user_repository.Repository {
	return NewUserRepository(t.store, t.log)
}

func (t *Transaction) Commit(ctx context.Context) error {
	if t.closed {
		return errTxClosed
	}
	t.closed = true
	if err := t.store.takeFailure("commit"); err != nil {
		t.store.restore(t.snapshot)
		return err
	}
	return nil
}

func (t *Transaction) Rollback(ctx context.Context) error {
	if t.closed {
		return errTxClosed
	}
	t.closed = true
	t.store.restore(t.snapshot)
	return nil
}
