package banking_test

import (
	"context"
	"math"
	"sync/atomic"

	"banking_api/internal/domain"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"golang.org/x/sync/errgroup"
)

func (s *ServiceSuite) TestTransferFirstCreditUnionScenario() {
	result := s.svc.TransferAmountToAccount(s.ctx, fundedAccount, emptyAccount, 5.00)

	s.Require().True(result.IsSuccess, result.Message)
	s.True(result.Value)
	s.Empty(result.Message)

	var accounts []domain.Account
	s.Require().NoError(s.db.Where("account_id IN ?", []int64{fundedAccount, emptyAccount}).Order("account_id").Find(&accounts).Error)
	s.Require().Len(accounts, 2)
	s.Equal(7.50, accounts[0].Balance)
	s.Equal(5.00, accounts[1].Balance)
	s.Equal(5.0, testutil.ToFloat64(s.metrics.TransferredTotal))
}

func (s *ServiceSuite) TestTransferWholeBalance() {
	result := s.svc.TransferAmountToAccount(s.ctx, fundedAccount, emptyAccount, startingBalance)

	s.Require().True(result.IsSuccess, result.Message)
	s.True(result.Value)
	s.Zero(s.balance(fundedAccount))
	s.Equal(startingBalance, s.balance(emptyAccount))
}

func (s *ServiceSuite) TestTransferInsufficientFundsIsBusinessOutcome() {
	result := s.svc.TransferAmountToAccount(s.ctx, fundedAccount, emptyAccount, 12.51)

	s.True(result.IsSuccess)
	s.False(result.Value)
	s.Equal(domain.KindBusiness, result.Kind)
	s.Equal("Not enough funds in Account 23456 for member 234789 to transfer. Requested to transfer: 12.51. Current balance: 12.5", result.Message)
	s.Equal(startingBalance, s.balance(fundedAccount))
	s.Zero(s.balance(emptyAccount))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.Operations.WithLabelValues("transfer", "business")))
}

func (s *ServiceSuite) TestTransferUnknownAccounts() {
	from := s.svc.TransferAmountToAccount(s.ctx, missingID, emptyAccount, 1)
	s.False(from.IsSuccess)
	s.False(from.Value)
	s.Equal(domain.KindNotFound, from.Kind)
	s.Equal("fromAccount Id is invalid.", from.Message)

	to := s.svc.TransferAmountToAccount(s.ctx, fundedAccount, missingID, 1)
	s.False(to.IsSuccess)
	s.False(to.Value)
	s.Equal("toAccount Id is invalid.", to.Message)

	s.Equal(startingBalance, s.balance(fundedAccount))
}

func (s *ServiceSuite) TestTransferRejectsBadAmount() {
	cases := []struct {
		name   string
		amount float64
	}{
		{"negative amount", -5},
		{"nan amount", math.NaN()},
		{"infinite amount", math.Inf(1)},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			result := s.svc.TransferAmountToAccount(s.ctx, fundedAccount, emptyAccount, tc.amount)

			s.False(result.IsSuccess)
			s.False(result.Value)
			s.Equal(domain.KindValidation, result.Kind)
			s.Equal("Amount must be a non-negative number.", result.Message)
		})
	}
	s.Equal(startingBalance, s.balance(fundedAccount))
	s.Zero(s.balance(emptyAccount))
}

func (s *ServiceSuite) TestTransferLeavingBalancesUnchanged() {
	cases := []struct {
		name     string
		from, to int64
		amount   float64
	}{
		{"zero amount", fundedAccount, emptyAccount, 0},
		{"zero amount from empty account", emptyAccount, fundedAccount, 0},
		{"same account", fundedAccount, fundedAccount, 1},
		{"same account whole balance", fundedAccount, fundedAccount, startingBalance},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			result := s.svc.TransferAmountToAccount(s.ctx, tc.from, tc.to, tc.amount)

			s.True(result.IsSuccess, result.Message)
			s.True(result.Value)
			s.Empty(result.Message)
		})
	}
	s.Equal(startingBalance, s.balance(fundedAccount))
	s.Zero(s.balance(emptyAccount))
	s.Zero(testutil.ToFloat64(s.metrics.TransferredTotal))
}

func (s *ServiceSuite) TestTransferSameAccountStillNeedsFunds() {
	result := s.svc.TransferAmountToAccount(s.ctx, fundedAccount, fundedAccount, 20)

	s.True(result.IsSuccess)
	s.False(result.Value)
	s.Equal(domain.KindBusiness, result.Kind)
	s.Equal(startingBalance, s.balance(fundedAccount))
}

func (s *ServiceSuite) TestTransferLooksUpAccountsBeforeCheckingAmount() {
	from := s.svc.TransferAmountToAccount(s.ctx, missingID, emptyAccount, 0)
	s.False(from.IsSuccess)
	s.Equal("fromAccount Id is invalid.", from.Message)

	to := s.svc.TransferAmountToAccount(s.ctx, fundedAccount, missingID, -1)
	s.False(to.IsSuccess)
	s.Equal("toAccount Id is invalid.", to.Message)
}

func (s *ServiceSuite) TestTransferCancelledContextChangesNothing() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	result := s.svc.TransferAmountToAccount(ctx, fundedAccount, emptyAccount, 1)

	s.False(result.IsSuccess)
	s.False(result.Value)
	s.Equal(startingBalance, s.balance(fundedAccount))
	s.Zero(s.balance(emptyAccount))
}

func (s *ServiceSuite) TestConcurrentTransfersSpendExactlyTheBalance() {
	const workers = 8
	const amount = 2.5 // 12.50 covers exactly five transfers

	var moved atomic.Int64
	var g errgroup.Group
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			result := s.svc.TransferAmountToAccount(context.Background(), fundedAccount, emptyAccount, amount)
			if result.IsSuccess && result.Value {
				moved.Add(1)
			}
			return nil
		})
	}
	s.Require().NoError(g.Wait())

	from, to := s.balance(fundedAccount), s.balance(emptyAccount)
	s.Zero(from)
	s.EqualValues(5, moved.Load(), "every covered transfer goes through")
	s.InDelta(startingBalance-float64(moved.Load())*amount, from, 1e-9)
	s.InDelta(startingBalance, from+to, 1e-9)
}

func (s *ServiceSuite) TestUpdateAccountBalance() {
	result := s.svc.UpdateAccountBalance(s.ctx, emptyAccount, 250.75)

	s.Require().True(result.IsSuccess, result.Message)
	s.True(result.Value)
	s.Equal(250.75, s.balance(emptyAccount))
}

func (s *ServiceSuite) TestUpdateAccountBalanceAllowsNegative() {
	result := s.svc.UpdateAccountBalance(s.ctx, fundedAccount, -10)

	s.Require().True(result.IsSuccess, result.Message)
	s.Equal(-10.0, s.balance(fundedAccount))
}

func (s *ServiceSuite) TestUpdateAccountBalanceUnchangedValue() {
	result := s.svc.UpdateAccountBalance(s.ctx, fundedAccount, startingBalance)

	s.True(result.IsSuccess, result.Message)
}

func (s *ServiceSuite) TestUpdateAccountBalanceUnknownAccount() {
	result := s.svc.UpdateAccountBalance(s.ctx, missingID, 1)

	s.False(result.IsSuccess)
	s.False(result.Value)
	s.Equal(domain.KindStorage, result.Kind)
	s.Equal("An error occurred processing update for account 999999.", result.Message)
}

func (s *ServiceSuite) TestUpdateAccountBalanceRejectsNaN() {
	result := s.svc.UpdateAccountBalance(s.ctx, fundedAccount, math.NaN())

	s.False(result.IsSuccess)
	s.Equal(domain.KindValidation, result.Kind)
	s.Equal(startingBalance, s.balance(fundedAccount))
}
