package repository

import (
	"context"
	"errors"

	"banking_api/internal/domain"

	"gorm.io/gorm"
)

// Gateway reads and stages writes for one entity type on a Session
type Gateway[T Entity] struct {
	session *Session
	table   Table
}

// NewGateway binds a gateway for T to session
func NewGateway[T Entity](session *Session, table Table) *Gateway[T] {
	return &Gateway[T]{session: session, table: table}
}

// Institutions returns the institution gateway of session
func Institutions(session *Session) *Gateway[domain.Institution] {
	return NewGateway[domain.Institution](session, InstitutionTable)
}

// Members returns the member gateway of session
func Members(session *Session) *Gateway[domain.Member] {
	return NewGateway[domain.Member](session, MemberTable)
}

// List returns every row. The slice is detached from the session.
func (g *Gateway[T]) List(ctx context.Context) ([]T, error) {
	var rows []T
	if err := g.session.conn(ctx).Find(&rows).Error; err != nil {
		return nil, &domain.StorageError{Op: "list " + g.table.Name, Err: err}
	}
	return rows, nil
}

// FindByID loads one row. Absence is reported as domain.ErrNotFound.
func (g *Gateway[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	var row T
	err := g.session.conn(ctx).Where(g.table.Key+" = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, &domain.StorageError{Op: "find " + g.table.Name, Err: err}
	}
	return &row, nil
}

// Add stages an insert. The identity of entity is filled in once the session
// flushes.
func (g *Gateway[T]) Add(entity *T) *T {
	g.session.stage(stagedOp{kind: opInsert, table: g.table, value: entity, missing: entity == nil})
	return entity
}

// Update stages a full-row update keyed by the entity identity
func (g *Gateway[T]) Update(entity *T) {
	g.session.stage(stagedOp{kind: opUpdate, table: g.table, value: entity, missing: entity == nil})
}

// Delete stages a removal keyed by the entity identity
func (g *Gateway[T]) Delete(entity *T) {
	g.session.stage(stagedOp{kind: opDelete, table: g.table, value: entity, missing: entity == nil})
}

// PersistChanges flushes everything staged on the underlying session
func (g *Gateway[T]) PersistChanges(ctx context.Context) error {
	return g.session.PersistChanges(ctx)
}
