package repository

import (
	"context"
	"errors"
	"fmt"

	"banking_api/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrNestedTransaction is returned by Begin while a transaction is open
	ErrNestedTransaction = errors.New("repository: transaction already in progress")

	// ErrTransactionDone is returned by Commit after Commit or Rollback
	ErrTransactionDone = errors.New("repository: transaction already finished")
)

type opKind int

const (
	opInsert opKind = iota
	opUpdate
	opDelete
	opDebit
	opCredit
)

func (k opKind) String() string {
	switch k {
	case opInsert:
		return "insert"
	case opUpdate:
		return "update"
	case opDelete:
		return "delete"
	case opDebit:
		return "debit"
	case opCredit:
		return "credit"
	}
	return "unknown"
}

// stagedOp is a write waiting for PersistChanges
type stagedOp struct {
	kind    opKind
	table   Table
	value   any     // Pointer to the entity
	missing bool    // Entity pointer was nil when staged
	id      int64   // Debit/credit target
	amount  float64 // Debit/credit amount
	applied func()  // Runs once the write is durable
}

// Session is the unit of work of a single operation. Gateways created on the
// same Session share its staged writes and, while one is open, its
// transaction. A Session is not safe for concurrent use.
type Session struct {
	db          *gorm.DB
	tx          *gorm.DB
	staged      []stagedOp
	afterCommit []func() // applied callbacks of writes flushed inside tx
}

// NewSession starts an empty unit of work over db
func NewSession(db *gorm.DB) *Session {
	return &Session{db: db}
}

// conn returns the handle reads and writes should go through
func (s *Session) conn(ctx context.Context) *gorm.DB {
	if s.tx != nil {
		return s.tx.WithContext(ctx)
	}
	return s.db.WithContext(ctx)
}

func (s *Session) stage(op stagedOp) {
	s.staged = append(s.staged, op)
}

// Pending returns the number of staged writes
func (s *Session) Pending() int {
	return len(s.staged)
}

// PersistChanges flushes staged writes in the order they were staged. Outside
// a transaction a batch of more than one write is flushed atomically on its
// own. The staged list is cleared whether or not the flush succeeds.
//
// In-memory side effects of flushed writes, such as the balance of a debited
// account, happen once the writes are durable: right after the flush outside
// a transaction, or when the open transaction commits.
func (s *Session) PersistChanges(ctx context.Context) error {
	ops := s.staged
	s.staged = nil
	if len(ops) == 0 {
		return nil
	}
	if s.tx == nil && len(ops) > 1 {
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return flush(tx, ops)
		})
		if err != nil {
			return err
		}
	} else if err := flush(s.conn(ctx), ops); err != nil {
		return err
	}
	for _, op := range ops {
		if op.applied == nil {
			continue
		}
		if s.tx != nil {
			s.afterCommit = append(s.afterCommit, op.applied)
		} else {
			op.applied()
		}
	}
	return nil
}

func flush(db *gorm.DB, ops []stagedOp) error {
	for _, op := range ops {
		if err := apply(db, op); err != nil {
			if errors.Is(err, domain.ErrInsufficientFunds) {
				return fmt.Errorf("%s %s: %w", op.kind, op.table.Name, err)
			}
			return &domain.StorageError{Op: op.kind.String() + " " + op.table.Name, Err: err}
		}
	}
	return nil
}

func apply(db *gorm.DB, op stagedOp) error {
	if op.missing {
		return fmt.Errorf("nil entity: %w", domain.ErrNotFound)
	}
	var res *gorm.DB
	switch op.kind {
	case opInsert:
		return db.Omit(clause.Associations).Create(op.value).Error
	case opUpdate:
		// Select("*") writes zero values too; the identity column is the key, never a target
		res = db.Model(op.value).Select("*").Omit(op.table.Key, clause.Associations).Updates(op.value)
	case opDelete:
		res = db.Delete(op.value)
	case opDebit:
		// Conditional update: the balance check and the write are one statement
		res = db.Table(op.table.Name).
			Where(op.table.Key+" = ? AND balance >= ?", op.id, op.amount).
			UpdateColumn("balance", gorm.Expr("balance - ?", op.amount))
		if res.Error == nil && res.RowsAffected == 0 {
			var n int64
			if err := db.Table(op.table.Name).Where(op.table.Key+" = ?", op.id).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return domain.ErrNotFound
			}
			return domain.ErrInsufficientFunds
		}
	case opCredit:
		res = db.Table(op.table.Name).
			Where(op.table.Key+" = ?", op.id).
			UpdateColumn("balance", gorm.Expr("balance + ?", op.amount))
	default:
		return fmt.Errorf("unknown staged op %d", op.kind)
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
