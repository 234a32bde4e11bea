package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/IdanZeman/Miuim-sub007/backend/internal/model"
	"github.com/IdanZeman/Miuim-sub007/backend/pkg/calendar"
)

// AbsenceRepository 请假记录仓储接口
type AbsenceRepository interface {
	Create(ctx context.Context, absence *model.Absence) error
	CreateBatch(ctx context.Context, absences []*model.Absence) error
	Update(ctx context.Context, absence *model.Absence) error
	Delete(ctx context.Context, absenceID, deletedBy string) error
	GetByID(ctx context.Context, absenceID string) (*model.Absence, error)
	ListByPerson(ctx context.Context, personID string) ([]*model.Absence, error)
	ListByOrganization(ctx context.Context, orgID string) ([]*model.Absence, error)
	// ListApprovedOverlapping 列出指定日期覆盖的所有已批准请假（含部分日）
	ListApprovedOverlapping(ctx context.Context, date calendar.Date, orgIDs []string) ([]*model.Absence, error)
}

type absenceRepository struct {
	db *gorm.DB
}

// NewAbsenceRepository 创建请假仓储
func NewAbsenceRepository(db *gorm.DB) AbsenceRepository {
	return &absenceRepository{db: db}
}

func (r *absenceRepository) Create(ctx context.Context, absence *model.Absence) error {
	return r.db.WithContext(ctx).Create(absence).Error
}

func (r *absenceRepository) CreateBatch(ctx context.Context, absences []*model.Absence) error {
	if len(absences) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&absences).Error
}

func (r *absenceRepository) Update(ctx context.Context, absence *model.Absence) error {
	return r.db.WithContext(ctx).Save(absence).Error
}

func (r *absenceRepository) Delete(ctx context.Context, absenceID, deletedBy string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Absence{}).
			Where("absence_id = ?", absenceID).
			Update("deleted_by", deletedBy).Error; err != nil {
			return err
		}
		return tx.Where("absence_id = ?", absenceID).Delete(&model.Absence{}).Error
	})
}

func (r *absenceRepository) GetByID(ctx context.Context, absenceID string) (*model.Absence, error) {
	var absence model.Absence
	err := r.db.WithContext(ctx).Where("absence_id = ?", absenceID).First(&absence).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &absence, nil
}

func (r *absenceRepository) ListByPerson(ctx context.Context, personID string) ([]*model.Absence, error) {
	var absences []*model.Absence
	err := r.db.WithContext(ctx).
		Where("person_id = ?", personID).
		Order("start_date DESC").
		Find(&absences).Error
	return absences, err
}

func (r *absenceRepository) ListByOrganization(ctx context.Context, orgID string) ([]*model.Absence, error) {
	var absences []*model.Absence
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("start_date DESC").
		Find(&absences).Error
	return absences, err
}

func (r *absenceRepository) ListApprovedOverlapping(ctx context.Context, date calendar.Date, orgIDs []string) ([]*model.Absence, error) {
	if len(orgIDs) == 0 {
		return nil, nil
	}
	var absences []*model.Absence
	err := r.db.WithContext(ctx).
		Where("organization_id IN ?", orgIDs).
		Where("status = ?", model.AbsenceStatusApproved).
		Where("start_date <= ? AND end_date >= ?", date, date).
		Find(&absences).Error
	return absences, err
}
