package domain

// Table names shared by the gorm models and the repository table descriptors
const (
	InstitutionsTable = "institutions" // Institution rows
	MembersTable      = "members"      // Member rows
	AccountsTable     = "accounts"     // Account rows
)

// Institution Model
type Institution struct {
	InstitutionID   int64    `gorm:"primaryKey" json:"institutionId"`                                                 // Primary key
	InstitutionName string   `gorm:"not null" json:"institutionName"`                                                 // Display name, required
	Members         []Member `gorm:"foreignKey:InstitutionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"` // One-to-many relationship with Member
}

// TableName pins the institutions table
func (Institution) TableName() string {
	return InstitutionsTable
}
