package repository

import (
	"context"

	"banking_api/internal/domain"
)

// AccountGateway adds balance movements to the account gateway
type AccountGateway struct {
	*Gateway[domain.Account]
}

// Accounts returns the account gateway of session
func Accounts(session *Session) *AccountGateway {
	return &AccountGateway{Gateway: NewGateway[domain.Account](session, AccountTable)}
}

// ListByMember returns the accounts owned by memberID
func (g *AccountGateway) ListByMember(ctx context.Context, memberID int64) ([]domain.Account, error) {
	var rows []domain.Account
	if err := g.session.conn(ctx).Where("member_id = ?", memberID).Find(&rows).Error; err != nil {
		return nil, &domain.StorageError{Op: "list " + g.table.Name, Err: err}
	}
	return rows, nil
}

// Debit stages a withdrawal of amount that only applies while the stored
// balance covers it. If it does not, the flush fails with
// domain.ErrInsufficientFunds. account.Balance is lowered once the debit is
// durable, so inside a transaction only after Commit.
func (g *AccountGateway) Debit(account *domain.Account, amount float64) {
	op := stagedOp{kind: opDebit, table: g.table, value: account, missing: account == nil, amount: amount}
	if account != nil {
		op.id = account.AccountID
		op.applied = func() { account.Balance -= amount }
	}
	g.session.stage(op)
}

// Credit stages a deposit of amount. Like Debit, account.Balance follows the
// stored value only once the write is durable.
func (g *AccountGateway) Credit(account *domain.Account, amount float64) {
	op := stagedOp{kind: opCredit, table: g.table, value: account, missing: account == nil, amount: amount}
	if account != nil {
		op.id = account.AccountID
		op.applied = func() { account.Balance += amount }
	}
	g.session.stage(op)
}
