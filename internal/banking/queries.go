package banking

import (
	"context"
	"errors"
	"fmt"

	"banking_api/internal/domain"
	"banking_api/internal/repository"
)

// GetMember returns a single member
func (s *Service) GetMember(ctx context.Context, memberID int64) domain.Result[*domain.Member] {
	log := s.log.WithField("operation", opGetMember).WithField("member_id", memberID)
	if memberID == 0 {
		message := "No MemberId provided."
		log.Warn(message)
		return finish(s, opGetMember, domain.Failure[*domain.Member](domain.KindValidation, message))
	}
	member, err := repository.Members(repository.NewSession(s.db)).FindByID(ctx, memberID)
	if errors.Is(err, domain.ErrNotFound) {
		message := fmt.Sprintf("Member %d was not found.", memberID)
		log.Warn(message)
		return finish(s, opGetMember, domain.Failure[*domain.Member](domain.KindNotFound, message))
	}
	if err != nil {
		message := "An error occurred GetMemberById request"
		log.WithError(err).Error(message)
		return finish(s, opGetMember, domain.Failure[*domain.Member](domain.KindStorage, message))
	}
	return finish(s, opGetMember, domain.Success(member))
}

// GetAllMembers lists every member, unordered
func (s *Service) GetAllMembers(ctx context.Context) domain.Result[[]domain.Member] {
	members, err := repository.Members(repository.NewSession(s.db)).List(ctx)
	if err != nil {
		message := "An error occurred getting all members."
		s.log.WithField("operation", opGetAllMembers).WithError(err).Error(message)
		return finish(s, opGetAllMembers, domain.Failure[[]domain.Member](domain.KindStorage, message))
	}
	return finish(s, opGetAllMembers, domain.Success(members))
}

// GetAllInstitutions lists every institution, unordered
func (s *Service) GetAllInstitutions(ctx context.Context) domain.Result[[]domain.Institution] {
	institutions, err := repository.Institutions(repository.NewSession(s.db)).List(ctx)
	if err != nil {
		message := "An error occurred getting all institutions."
		s.log.WithField("operation", opGetAllInstitutions).WithError(err).Error(message)
		return finish(s, opGetAllInstitutions, domain.Failure[[]domain.Institution](domain.KindStorage, message))
	}
	return finish(s, opGetAllInstitutions, domain.Success(institutions))
}

// GetMemberAccounts lists the accounts of one member
func (s *Service) GetMemberAccounts(ctx context.Context, memberID int64) domain.Result[[]domain.Account] {
	log := s.log.WithField("operation", opGetMemberAccounts).WithField("member_id", memberID)
	if memberID < 1 {
		message := "MemberId is invalid."
		log.Warn(message)
		return finish(s, opGetMemberAccounts, domain.Failure[[]domain.Account](domain.KindValidation, message))
	}
	accounts, err := repository.Accounts(repository.NewSession(s.db)).ListByMember(ctx, memberID)
	if err != nil {
		message := fmt.Sprintf("An error occurred getting accounts for member %d.", memberID)
		log.WithError(err).Error(message)
		return finish(s, opGetMemberAccounts, domain.Failure[[]domain.Account](domain.KindStorage, message))
	}
	return finish(s, opGetMemberAccounts, domain.Success(accounts))
}
