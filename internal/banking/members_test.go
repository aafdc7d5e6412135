package banking_test

import (
	"context"

	"banking_api/internal/domain"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
)

func (s *ServiceSuite) TestAddMemberCreatesMemberAndZeroBalanceAccount() {
	result := s.svc.AddMember(s.ctx, domain.Member{GivenName: "Jane", Surname: "Roe", InstitutionID: institutionID})

	s.Require().True(result.IsSuccess, result.Message)
	s.Require().NotNil(result.Value)
	s.NotZero(result.Value.MemberID)
	s.Equal("Jane", result.Value.GivenName)

	var accounts []domain.Account
	s.Require().NoError(s.db.Where("member_id = ?", result.Value.MemberID).Find(&accounts).Error)
	s.Require().Len(accounts, 1)
	s.Zero(accounts[0].Balance)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.Operations.WithLabelValues("add_member", "success")))
}

func (s *ServiceSuite) TestAddMemberIgnoresCallerSuppliedID() {
	result := s.svc.AddMember(s.ctx, domain.Member{MemberID: memberID, GivenName: "Jane", Surname: "Roe", InstitutionID: institutionID})

	s.Require().True(result.IsSuccess, result.Message)
	s.NotEqual(memberID, result.Value.MemberID)
	s.Equal(int64(2), s.count(&domain.Member{}))
}

func (s *ServiceSuite) TestAddMemberAccumulatesValidationProblems() {
	result := s.svc.AddMember(s.ctx, domain.Member{GivenName: "  "})

	s.False(result.IsSuccess)
	s.Nil(result.Value)
	s.Equal(domain.KindValidation, result.Kind)
	s.Equal("GivenName is required; Surname is required; InstitutionId is required;", result.Message)
	s.Equal(int64(1), s.count(&domain.Member{}))
	s.Equal(logrus.WarnLevel, s.hook.LastEntry().Level)
}

func (s *ServiceSuite) TestAddMemberSingleValidationProblem() {
	result := s.svc.AddMember(s.ctx, domain.Member{GivenName: "Jane", Surname: "Roe"})

	s.False(result.IsSuccess)
	s.Equal("InstitutionId is required;", result.Message)
}

func (s *ServiceSuite) TestAddMemberUnknownInstitutionLeavesNothingBehind() {
	result := s.svc.AddMember(s.ctx, domain.Member{GivenName: "Jane", Surname: "Roe", InstitutionID: missingID})

	s.False(result.IsSuccess)
	s.Equal(domain.KindStorage, result.Kind)
	s.Equal("An error occurred creating a new member.", result.Message)
	s.Equal(int64(1), s.count(&domain.Member{}))
	s.Equal(int64(2), s.count(&domain.Account{}))
	s.Equal(logrus.ErrorLevel, s.hook.LastEntry().Level)
}

func (s *ServiceSuite) TestAddMemberCancelledContextWritesNothing() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	result := s.svc.AddMember(ctx, domain.Member{GivenName: "Jane", Surname: "Roe", InstitutionID: institutionID})

	s.False(result.IsSuccess)
	s.Equal(int64(1), s.count(&domain.Member{}))
	s.Equal(int64(2), s.count(&domain.Account{}))
}

func (s *ServiceSuite) TestUpdateMember() {
	result := s.svc.UpdateMember(s.ctx, domain.Member{MemberID: memberID, GivenName: "Johnny", Surname: "Doe", InstitutionID: institutionID})

	s.Require().True(result.IsSuccess, result.Message)
	s.True(result.Value)
	var member domain.Member
	s.Require().NoError(s.db.First(&member, "member_id = ?", memberID).Error)
	s.Equal("Johnny", member.GivenName)
}

func (s *ServiceSuite) TestUpdateMemberUnknownIDIsStorageFailure() {
	result := s.svc.UpdateMember(s.ctx, domain.Member{MemberID: missingID, GivenName: "X", Surname: "Y", InstitutionID: institutionID})

	s.False(result.IsSuccess)
	s.False(result.Value)
	s.Equal(domain.KindStorage, result.Kind)
	s.Equal("An error occurred processing update for member 999999.", result.Message)
}

func (s *ServiceSuite) TestDeleteMemberCascadesToAccounts() {
	result := s.svc.DeleteMember(s.ctx, memberID)

	s.Require().True(result.IsSuccess, result.Message)
	s.True(result.Value)
	s.Zero(s.count(&domain.Member{}))
	s.Zero(s.count(&domain.Account{}))
	s.Equal(int64(1), s.count(&domain.Institution{}))
}

func (s *ServiceSuite) TestDeleteMemberInvalidID() {
	for _, id := range []int64{0, -4} {
		result := s.svc.DeleteMember(s.ctx, id)

		s.False(result.IsSuccess)
		s.False(result.Value)
		s.Equal(domain.KindValidation, result.Kind)
		s.Equal("MemberId is invalid.", result.Message)
	}
	s.Equal(int64(1), s.count(&domain.Member{}))
}

func (s *ServiceSuite) TestDeleteMemberNotFound() {
	result := s.svc.DeleteMember(s.ctx, missingID)

	s.False(result.IsSuccess)
	s.False(result.Value)
	s.Equal(domain.KindNotFound, result.Kind)
	s.Equal("Member 999999 was not found.", result.Message)
	s.Equal(int64(1), s.count(&domain.Member{}))
}
