package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/IdanZeman/Miuim-sub007/backend/internal/model"
)

// PersonRepository 人员仓储接口（人员目录由外部平台同步，本服务只读）
type PersonRepository interface {
	GetByID(ctx context.Context, personID string) (*model.Person, error)
	ListActiveByOrganization(ctx context.Context, orgID string) ([]*model.Person, error)
	ListActiveByOrganizations(ctx context.Context, orgIDs []string) ([]*model.Person, error)
}

type personRepository struct {
	db *gorm.DB
}

// NewPersonRepository 创建人员仓储
func NewPersonRepository(db *gorm.DB) PersonRepository {
	return &personRepository{db: db}
}

func (r *personRepository) GetByID(ctx context.Context, personID string) (*model.Person, error) {
	var person model.Person
	err := r.db.WithContext(ctx).Where("person_id = ?", personID).First(&person).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &person, nil
}

func (r *personRepository) ListActiveByOrganization(ctx context.Context, orgID string) ([]*model.Person, error) {
	var persons []*model.Person
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND is_active = ?", orgID, true).
		Order("name ASC").
		Find(&persons).Error
	return persons, err
}

func (r *personRepository) ListActiveByOrganizations(ctx context.Context, orgIDs []string) ([]*model.Person, error) {
	if len(orgIDs) == 0 {
		return nil, nil
	}
	var persons []*model.Person
	err := r.db.WithContext(ctx).
		Where("organization_id IN ? AND is_active = ?", orgIDs, true).
		Find(&persons).Error
	return persons, err
}
