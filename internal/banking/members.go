package banking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"banking_api/internal/domain"
	"banking_api/internal/repository"

	"github.com/sirupsen/logrus"
)

const msgAddMemberFailed = "An error occurred creating a new member."

// AddMember validates member, then creates it together with a zero-balance
// account in one transaction. Neither row is visible unless both are.
func (s *Service) AddMember(ctx context.Context, member domain.Member) domain.Result[*domain.Member] {
	problems := &domain.ValidationError{}
	if strings.TrimSpace(member.GivenName) == "" {
		problems.Required("GivenName")
	}
	if strings.TrimSpace(member.Surname) == "" {
		problems.Required("Surname")
	}
	if member.InstitutionID < 1 {
		problems.Required("InstitutionId")
	}
	if problems.HasProblems() {
		s.log.WithField("operation", opAddMember).Warn(problems.Error())
		return finish(s, opAddMember, domain.Failure[*domain.Member](domain.KindValidation, problems.Error()))
	}

	// No duplicate check: nothing in the model identifies a person uniquely.
	member.MemberID = 0
	created, account, err := s.addMemberWithAccount(ctx, &member)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"operation":      opAddMember,          // Operation name
			"institution_id": member.InstitutionID, // Requested institution
			"error":          err.Error(),          // Error message
		}).Error(msgAddMemberFailed)
		return finish(s, opAddMember, domain.Failure[*domain.Member](domain.KindStorage, msgAddMemberFailed))
	}
	s.log.WithFields(logrus.Fields{
		"operation":  opAddMember,       // Operation name
		"member_id":  created.MemberID,  // New member
		"account_id": account.AccountID, // Opening account
	}).Info("Member created")
	return finish(s, opAddMember, domain.Success(created))
}

func (s *Service) addMemberWithAccount(ctx context.Context, member *domain.Member) (*domain.Member, *domain.Account, error) {
	session := repository.NewSession(s.db)
	tx, err := session.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	members := repository.Members(session)
	created := members.Add(member)
	if err := members.PersistChanges(ctx); err != nil {
		return nil, nil, err
	}
	accounts := repository.Accounts(session)
	account := accounts.Add(&domain.Account{Balance: 0, MemberID: created.MemberID})
	if err := accounts.PersistChanges(ctx); err != nil {
		return nil, nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}
	return created, account, nil
}

// UpdateMember overwrites the stored member with the same id. There is no
// existence check; a missing id fails when the update is flushed.
func (s *Service) UpdateMember(ctx context.Context, member domain.Member) domain.Result[bool] {
	session := repository.NewSession(s.db)
	members := repository.Members(session)
	members.Update(&member)
	if err := members.PersistChanges(ctx); err != nil {
		message := fmt.Sprintf("An error occurred processing update for member %d.", member.MemberID)
		s.log.WithFields(logrus.Fields{
			"operation": opUpdateMember,  // Operation name
			"member_id": member.MemberID, // Target member
			"error":     err.Error(),     // Error message
		}).Error(message)
		return finish(s, opUpdateMember, domain.Failure[bool](domain.KindStorage, message))
	}
	return finish(s, opUpdateMember, domain.Success(true))
}

// DeleteMember removes a member; the store cascades the delete to its accounts.
// A member that does not exist is reported as not found and nothing is written.
func (s *Service) DeleteMember(ctx context.Context, memberID int64) domain.Result[bool] {
	log := s.log.WithFields(logrus.Fields{"operation": opDeleteMember, "member_id": memberID})
	if memberID < 1 {
		message := "MemberId is invalid."
		log.Warn(message)
		return finish(s, opDeleteMember, domain.Failure[bool](domain.KindValidation, message))
	}

	session := repository.NewSession(s.db)
	members := repository.Members(session)
	member, err := members.FindByID(ctx, memberID)
	if errors.Is(err, domain.ErrNotFound) {
		message := fmt.Sprintf("Member %d was not found.", memberID)
		log.Warn(message)
		return finish(s, opDeleteMember, domain.Failure[bool](domain.KindNotFound, message))
	}
	if err == nil {
		members.Delete(member)
		err = members.PersistChanges(ctx)
	}
	if err != nil {
		message := fmt.Sprintf("An error occurred deleting id %d", memberID)
		log.WithError(err).Error(message)
		return finish(s, opDeleteMember, domain.Failure[bool](domain.KindStorage, message))
	}
	log.Info("Member deleted")
	return finish(s, opDeleteMember, domain.Success(true))
}
