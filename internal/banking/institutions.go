package banking

import (
	"context"
	"strings"

	"banking_api/internal/domain"
	"banking_api/internal/repository"

	"github.com/sirupsen/logrus"
)

const msgCreateInstitutionFailed = "An error occurred creating a new institution."

// CreateInstitution stores a new institution and returns it with its id
func (s *Service) CreateInstitution(ctx context.Context, institution domain.Institution) domain.Result[*domain.Institution] {
	problems := &domain.ValidationError{}
	if strings.TrimSpace(institution.InstitutionName) == "" {
		problems.Required("InstitutionName")
	}
	if problems.HasProblems() {
		s.log.WithField("operation", opCreateInstitution).Warn(problems.Error())
		return finish(s, opCreateInstitution, domain.Failure[*domain.Institution](domain.KindValidation, problems.Error()))
	}

	institution.InstitutionID = 0
	session := repository.NewSession(s.db)
	institutions := repository.Institutions(session)
	created := institutions.Add(&institution)
	if err := institutions.PersistChanges(ctx); err != nil {
		s.log.WithFields(logrus.Fields{
			"operation": opCreateInstitution, // Operation name
			"error":     err.Error(),         // Error message
		}).Error(msgCreateInstitutionFailed)
		return finish(s, opCreateInstitution, domain.Failure[*domain.Institution](domain.KindStorage, msgCreateInstitutionFailed))
	}
	s.log.WithFields(logrus.Fields{
		"operation":      opCreateInstitution,   // Operation name
		"institution_id": created.InstitutionID, // New institution
	}).Info("Institution created")
	return finish(s, opCreateInstitution, domain.Success(created))
}
