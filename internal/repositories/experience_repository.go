package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "tripweave/internal/models/db_models"
)

type ExperienceRepository interface {
	CreateExperience(ctx context.Context, exp *dbm.Experience) error
	GetExperienceById(ctx context.Context, id string) (*dbm.Experience, error)
	ListByDestination(ctx context.Context, destination string, page, pageSize int) ([]dbm.Experience, error)
	SearchByName(ctx context.Context, name string, destination string, page, pageSize int) ([]dbm.Experience, error)
	DeleteExperience(ctx context.Context, id uuid.UUID) error
}

type experienceRepository struct {
	db *gorm.DB
}

func NewExperienceRepository(db *gorm.DB) ExperienceRepository {
	return &experienceRepository{db: db}
}

func (r *experienceRepository) CreateExperience(ctx context.Context, exp *dbm.Experience) error {
	return r.db.WithContext(ctx).Create(exp).Error
}

func (r *experienceRepository) GetExperienceById(ctx context.Context, id string) (*dbm.Experience, error) {
	var exp dbm.Experience
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&exp).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &exp, nil
}

func (r *experienceRepository) ListByDestination(ctx context.Context, destination string, page, pageSize int) ([]dbm.Experience, error) {
	var exps []dbm.Experience
	err := r.db.WithContext(ctx).
		Where("destination = ?", destination).
		Order("name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&exps).Error

	if err != nil {
		return nil, err
	}

	return exps, nil
}

func (r *experienceRepository) SearchByName(ctx context.Context, name string, destination string, page, pageSize int) ([]dbm.Experience, error) {
	q := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+name+"%")
	if destination != "" {
		q = q.Where("destination = ?", destination)
	}

	var exps []dbm.Experience
	err := q.
		Order("name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&exps).Error

	if err != nil {
		return nil, err
	}

	return exps, nil
}

func (r *experienceRepository) DeleteExperience(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&dbm.Experience{}).Error
}
