package repository

import "banking_api/internal/domain"

// Table maps an entity onto its table and identity column.
type Table struct {
	Name string // Table name
	Key  string // Identity column
}

// Static entity-to-table mapping. Keep in sync with the TableName methods
// and primaryKey tags in internal/domain.
var (
	InstitutionTable = Table{Name: domain.InstitutionsTable, Key: "institution_id"}
	MemberTable      = Table{Name: domain.MembersTable, Key: "member_id"}
	AccountTable     = Table{Name: domain.AccountsTable, Key: "account_id"}
)

// Entity is the set of models a Gateway can serve
type Entity interface {
	domain.Institution | domain.Member | domain.Account
}
