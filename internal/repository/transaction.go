package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"banking_api/internal/domain"

	"gorm.io/gorm"
)

// Transaction groups every write flushed by its Session between Begin and
// Commit. Defer Rollback right after Begin; it does nothing once Commit has
// run.
type Transaction struct {
	ctx     context.Context
	session *Session
	tx      *gorm.DB
	done    bool
}

// Begin opens the session's transaction. Only one may be open per Session.
func (s *Session) Begin(ctx context.Context) (*Transaction, error) {
	if s.tx != nil {
		return nil, ErrNestedTransaction
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("begin aborted: %w", err)
	}
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, &domain.StorageError{Op: "begin", Err: tx.Error}
	}
	s.tx = tx
	return &Transaction{ctx: ctx, session: s, tx: tx}, nil
}

// Commit flushes any writes still staged and commits. If the context passed
// to Begin is already cancelled the transaction is rolled back instead and the
// context error returned. In-memory effects of the transaction's writes are
// applied only after the commit succeeds.
func (t *Transaction) Commit() error {
	if t.done {
		return ErrTransactionDone
	}
	if err := t.ctx.Err(); err != nil {
		_ = t.Rollback()
		return fmt.Errorf("commit aborted: %w", err)
	}
	if t.session.Pending() > 0 {
		if err := t.session.PersistChanges(t.ctx); err != nil {
			_ = t.Rollback()
			return err
		}
	}
	err := t.tx.Commit().Error
	applied := t.session.afterCommit
	t.finish()
	if err != nil {
		return &domain.StorageError{Op: "commit", Err: err}
	}
	for _, fn := range applied {
		fn()
	}
	return nil
}

// Rollback discards the transaction and anything still staged
func (t *Transaction) Rollback() error {
	if t.done {
		return nil
	}
	err := t.tx.Rollback().Error
	t.session.staged = nil
	t.finish()
	// database/sql already rolls back when the context is cancelled
	if err != nil && !errors.Is(err, sql.ErrTxDone) {
		return &domain.StorageError{Op: "rollback", Err: err}
	}
	return nil
}

func (t *Transaction) finish() {
	t.done = true
	t.session.tx = nil
	t.session.afterCommit = nil
}
