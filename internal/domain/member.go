package domain

// Member Model
type Member struct {
	MemberID      int64     `gorm:"primaryKey" json:"memberId"`                                                 // Primary key
	GivenName     string    `gorm:"not null" json:"givenName"`                                                  // First name, required
	Surname       string    `gorm:"not null" json:"surname"`                                                    // Last name, required
	InstitutionID int64     `gorm:"not null;index" json:"institutionId"`                                        // Foreign key to Institution
	Accounts      []Account `gorm:"foreignKey:MemberID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"` // One-to-many relationship with Account
}

// TableName pins the members table
func (Member) TableName() string {
	return MembersTable
}
