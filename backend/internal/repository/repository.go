package repository

import (
	"gorm.io/gorm"
)

// Repository 仓储聚合，持有各实体仓储的接口实例
type Repository struct {
	Person         PersonRepository
	Team           TeamRepository
	Organization   OrganizationRepository
	RotationConfig RotationConfigRepository
	Absence        AbsenceRepository
	Override       PresenceOverrideRepository
	Snapshot       PresenceSnapshotRepository
}

// NewRepository 创建仓储聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Person:         NewPersonRepository(db),
		Team:           NewTeamRepository(db),
		Organization:   NewOrganizationRepository(db),
		RotationConfig: NewRotationConfigRepository(db),
		Absence:        NewAbsenceRepository(db),
		Override:       NewPresenceOverrideRepository(db),
		Snapshot:       NewPresenceSnapshotRepository(db),
	}
}
