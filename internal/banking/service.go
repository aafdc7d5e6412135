// Package banking holds the validated command and query operations over
// institutions, members and accounts. Every operation opens its own
// repository.Session, so a Service is safe for concurrent use as long as the
// *gorm.DB it wraps is.
package banking

import (
	"banking_api/internal/domain"
	"banking_api/internal/metrics"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Operation names used in logs and metrics
const (
	opAddMember            = "add_member"
	opCreateInstitution    = "create_institution"
	opUpdateMember         = "update_member"
	opDeleteMember         = "delete_member"
	opTransfer             = "transfer"
	opUpdateAccountBalance = "update_account_balance"
	opGetMember            = "get_member"
	opGetAllMembers        = "get_all_members"
	opGetAllInstitutions   = "get_all_institutions"
	opGetMemberAccounts    = "get_member_accounts"
)

// Service runs banking operations against a database
type Service struct {
	db      *gorm.DB
	log     logrus.FieldLogger
	metrics *metrics.Metrics
}

// NewService builds a Service. m may be nil.
func NewService(db *gorm.DB, log logrus.FieldLogger, m *metrics.Metrics) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{db: db, log: log, metrics: m}
}

// finish records the outcome of op and hands the result back
func finish[T any](s *Service, op string, r domain.Result[T]) domain.Result[T] {
	outcome := "success"
	if r.Kind != domain.KindNone {
		outcome = string(r.Kind)
	}
	s.metrics.ObserveOperation(op, outcome)
	return r
}
