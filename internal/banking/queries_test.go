package banking_test

import "banking_api/internal/domain"

func (s *ServiceSuite) TestGetMember() {
	result := s.svc.GetMember(s.ctx, memberID)

	s.Require().True(result.IsSuccess, result.Message)
	s.Equal(&domain.Member{MemberID: memberID, GivenName: "John", Surname: "Doe", InstitutionID: institutionID}, result.Value)
}

func (s *ServiceSuite) TestGetMemberWithoutID() {
	result := s.svc.GetMember(s.ctx, 0)

	s.False(result.IsSuccess)
	s.Nil(result.Value)
	s.Equal("No MemberId provided.", result.Message)
}

func (s *ServiceSuite) TestGetMemberNotFound() {
	result := s.svc.GetMember(s.ctx, missingID)

	s.False(result.IsSuccess)
	s.Nil(result.Value)
	s.Equal(domain.KindNotFound, result.Kind)
}

func (s *ServiceSuite) TestGetAllMembersIsRepeatable() {
	added := s.svc.AddMember(s.ctx, domain.Member{GivenName: "Jane", Surname: "Roe", InstitutionID: institutionID})
	s.Require().True(added.IsSuccess)

	first := s.svc.GetAllMembers(s.ctx)
	second := s.svc.GetAllMembers(s.ctx)

	s.Require().True(first.IsSuccess)
	s.Require().True(second.IsSuccess)
	s.Len(first.Value, 2)
	s.ElementsMatch(first.Value, second.Value)
}

func (s *ServiceSuite) TestGetAllInstitutions() {
	result := s.svc.GetAllInstitutions(s.ctx)

	s.Require().True(result.IsSuccess)
	s.Equal([]domain.Institution{{InstitutionID: institutionID, InstitutionName: "First Credit Union"}}, result.Value)
}

func (s *ServiceSuite) TestGetMemberAccounts() {
	result := s.svc.GetMemberAccounts(s.ctx, memberID)

	s.Require().True(result.IsSuccess)
	s.ElementsMatch([]domain.Account{
		{AccountID: fundedAccount, Balance: startingBalance, MemberID: memberID},
		{AccountID: emptyAccount, Balance: 0, MemberID: memberID},
	}, result.Value)

	invalid := s.svc.GetMemberAccounts(s.ctx, 0)
	s.False(invalid.IsSuccess)
	s.Equal(domain.KindValidation, invalid.Kind)
}

func (s *ServiceSuite) TestQueriesFailWhenStoreIsGone() {
	sqlDB, err := s.db.DB()
	s.Require().NoError(err)
	s.Require().NoError(sqlDB.Close())

	members := s.svc.GetAllMembers(s.ctx)
	s.False(members.IsSuccess)
	s.Nil(members.Value)
	s.Equal("An error occurred getting all members.", members.Message)

	institutions := s.svc.GetAllInstitutions(s.ctx)
	s.False(institutions.IsSuccess)
	s.Equal("An error occurred getting all institutions.", institutions.Message)

	member := s.svc.GetMember(s.ctx, memberID)
	s.False(member.IsSuccess)
	s.Equal(domain.KindStorage, member.Kind)
	s.Equal("An error occurred GetMemberById request", member.Message)
}
