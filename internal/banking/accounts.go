package banking

import (
	"context"
	"errors"
	"fmt"
	"math"

	"banking_api/internal/domain"
	"banking_api/internal/repository"

	"github.com/sirupsen/logrus"
)

const msgTransferFailed = "An error has occurred processing transfer transaction."

// TransferAmountToAccount moves amount from one account to another.
//
// Unknown accounts fail the operation. Insufficient funds is not a failure:
// the result is successful with Value false and nothing is written. The debit
// re-checks the balance in the same statement that writes it, so two
// concurrent transfers cannot both spend the same funds. A zero amount or a
// transfer onto the same account succeeds without writing anything.
func (s *Service) TransferAmountToAccount(ctx context.Context, fromAccountID, toAccountID int64, amount float64) domain.Result[bool] {
	log := s.log.WithFields(logrus.Fields{
		"operation":       opTransfer,    // Operation name
		"from_account_id": fromAccountID, // Source account
		"to_account_id":   toAccountID,   // Target account
		"amount":          amount,        // Transfer amount
	})

	session := repository.NewSession(s.db)
	accounts := repository.Accounts(session)
	from, err := accounts.FindByID(ctx, fromAccountID)
	if err != nil {
		return finish(s, opTransfer, s.lookupFailure(log, "fromAccount", err))
	}
	to, err := accounts.FindByID(ctx, toAccountID)
	if err != nil {
		return finish(s, opTransfer, s.lookupFailure(log, "toAccount", err))
	}

	// A negative amount would pull funds out of the target account
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		message := "Amount must be a non-negative number."
		log.Warn(message)
		return finish(s, opTransfer, domain.Failure[bool](domain.KindValidation, message))
	}

	insufficient := func() domain.Result[bool] {
		message := fmt.Sprintf("Not enough funds in Account %d for member %d to transfer. Requested to transfer: %v. Current balance: %v",
			from.AccountID, from.MemberID, amount, from.Balance)
		log.Warn(message)
		return finish(s, opTransfer, domain.Outcome(false, message))
	}
	if from.Balance-amount < 0 {
		return insufficient()
	}
	if amount == 0 || from.AccountID == to.AccountID {
		log.Info("Transfer leaves balances unchanged")
		return finish(s, opTransfer, domain.Success(true))
	}

	err = s.transfer(ctx, session, accounts, from, to, amount)
	if errors.Is(err, domain.ErrInsufficientFunds) {
		// Balance changed between the read and the debit
		return insufficient()
	}
	if err != nil {
		log.WithError(err).Error(msgTransferFailed)
		return finish(s, opTransfer, domain.Failure[bool](domain.KindStorage, msgTransferFailed))
	}
	s.metrics.AddTransferred(amount)
	log.WithFields(logrus.Fields{
		"from_balance": from.Balance, // Source balance after debit
		"to_balance":   to.Balance,   // Target balance after credit
	}).Info("Transfer transaction")
	return finish(s, opTransfer, domain.Success(true))
}

func (s *Service) transfer(ctx context.Context, session *repository.Session, accounts *repository.AccountGateway, from, to *domain.Account, amount float64) error {
	tx, err := session.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	accounts.Debit(from, amount)
	accounts.Credit(to, amount)
	if err := accounts.PersistChanges(ctx); err != nil {
		return err
	}
	return tx.Commit()
}

// lookupFailure turns a failed account read into a transfer result
func (s *Service) lookupFailure(log logrus.FieldLogger, which string, err error) domain.Result[bool] {
	if errors.Is(err, domain.ErrNotFound) {
		message := which + " Id is invalid."
		log.Warn(message)
		return domain.Failure[bool](domain.KindNotFound, message)
	}
	log.WithError(err).Error(msgTransferFailed)
	return domain.Failure[bool](domain.KindStorage, msgTransferFailed)
}

// UpdateAccountBalance sets the balance of an account to newBalance.
// Unlike a transfer this may leave the balance negative.
func (s *Service) UpdateAccountBalance(ctx context.Context, accountID int64, newBalance float64) domain.Result[bool] {
	message := fmt.Sprintf("An error occurred processing update for account %d.", accountID)
	log := s.log.WithFields(logrus.Fields{
		"operation":   opUpdateAccountBalance, // Operation name
		"account_id":  accountID,              // Target account
		"new_balance": newBalance,             // Requested balance
	})
	if math.IsNaN(newBalance) || math.IsInf(newBalance, 0) {
		problem := "NewBalance must be a finite number."
		log.Warn(problem)
		return finish(s, opUpdateAccountBalance, domain.Failure[bool](domain.KindValidation, problem))
	}

	session := repository.NewSession(s.db)
	accounts := repository.Accounts(session)
	account, err := accounts.FindByID(ctx, accountID)
	if err == nil {
		account.Balance = newBalance
		accounts.Update(account)
		err = accounts.PersistChanges(ctx)
	}
	if err != nil {
		log.WithError(err).Error(message)
		return finish(s, opUpdateAccountBalance, domain.Failure[bool](domain.KindStorage, message))
	}
	log.Info("Account balance updated")
	return finish(s, opUpdateAccountBalance, domain.Success(true))
}
