package db

import (
	"context"
	"fmt"
	"os"

	"banking_api/internal/domain"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedFile is the YAML layout of a seed data set
type SeedFile struct {
	Institutions []SeedInstitution `yaml:"institutions"`
	Members      []SeedMember      `yaml:"members"`
}

// SeedInstitution is one institution row
type SeedInstitution struct {
	InstitutionID   int64  `yaml:"institutionId"`
	InstitutionName string `yaml:"institutionName"`
}

// SeedMember is one member with the accounts it owns
type SeedMember struct {
	MemberID      int64         `yaml:"memberId"`
	GivenName     string        `yaml:"givenName"`
	Surname       string        `yaml:"surname"`
	InstitutionID int64         `yaml:"institutionId"`
	Accounts      []SeedAccount `yaml:"accounts"`
}

// SeedAccount is one account row
type SeedAccount struct {
	AccountID int64   `yaml:"accountId"`
	Balance   float64 `yaml:"balance"`
}

// SeedReport counts the rows a Seed call actually inserted
type SeedReport struct {
	Institutions int64
	Members      int64
	Accounts     int64
}

// LoadSeed reads and decodes a YAML seed file
func LoadSeed(path string) (*SeedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("decode seed file %s: %w", path, err)
	}
	return &seed, nil
}

// Seed inserts the seed rows with their explicit ids in one transaction.
// Rows whose id already exists are left untouched, so seeding twice is harmless.
func Seed(ctx context.Context, db *gorm.DB, seed *SeedFile) (SeedReport, error) {
	var report SeedReport
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		skipExisting := tx.Clauses(clause.OnConflict{DoNothing: true}).Session(&gorm.Session{})
		for _, si := range seed.Institutions {
			res := skipExisting.Create(&domain.Institution{
				InstitutionID:   si.InstitutionID,
				InstitutionName: si.InstitutionName,
			})
			if res.Error != nil {
				return fmt.Errorf("seed institution %d: %w", si.InstitutionID, res.Error)
			}
			report.Institutions += res.RowsAffected
		}
		for _, sm := range seed.Members {
			res := skipExisting.Omit(clause.Associations).Create(&domain.Member{
				MemberID:      sm.MemberID,
				GivenName:     sm.GivenName,
				Surname:       sm.Surname,
				InstitutionID: sm.InstitutionID,
			})
			if res.Error != nil {
				return fmt.Errorf("seed member %d: %w", sm.MemberID, res.Error)
			}
			report.Members += res.RowsAffected
			for _, sa := range sm.Accounts {
				res := skipExisting.Create(&domain.Account{
					AccountID: sa.AccountID,
					Balance:   sa.Balance,
					MemberID:  sm.MemberID,
				})
				if res.Error != nil {
					return fmt.Errorf("seed account %d: %w", sa.AccountID, res.Error)
				}
				report.Accounts += res.RowsAffected
			}
		}
		return nil
	})
	if err != nil {
		return SeedReport{}, err
	}
	logrus.WithFields(logrus.Fields{
		"institutions": report.Institutions, // Inserted institutions
		"members":      report.Members,      // Inserted members
		"accounts":     report.Accounts,     // Inserted accounts
	}).Info("Seed data loaded")
	return report, nil
}
