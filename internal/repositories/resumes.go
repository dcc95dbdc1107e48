package repositories

import (
	"context"
	"errors"
	"github.com/soham164/skill-gap-analyzer/internal/apperrors"
	"github.com/soham164/skill-gap-analyzer/internal/entities"
	"gorm.io/gorm"
)

type Resumes struct {
	db *gorm.DB
}

func NewResumesRepository(db *gorm.DB) *Resumes {
	return &Resumes{db: db}
}

func (repo *Resumes) Add(ctx context.Context, resume *entities.Resume) error {
	return repo.db.WithContext(ctx).Create(resume).Error
}

func (repo *Resumes) GetByID(ctx context.Context, id uint) (*entities.Resume, error) {

	var resume entities.Resume
	if err := repo.db.WithContext(ctx).First(&resume, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("resume %v", id)
		}
		return nil, err
	}
	return &resume, nil
}

func (repo *Resumes) GetByUser(ctx context.Context, userID uint) ([]entities.Resume, error) {

	var resumes []entities.Resume
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&resumes, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return resumes, nil
}
