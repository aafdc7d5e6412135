package domain

// Account Model
type Account struct {
	AccountID int64   `gorm:"primaryKey" json:"accountId"`       // Primary key
	Balance   float64 `gorm:"not null;default:0" json:"balance"` // Account balance
	MemberID  int64   `gorm:"not null;index" json:"memberId"`    // Foreign key to Member
}

// TableName pins the accounts table
func (Account) TableName() string {
	return AccountsTable
}
