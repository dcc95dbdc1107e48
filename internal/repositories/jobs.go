package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/soham164/skill-gap-analyzer/internal/apperrors"
	"github.com/soham164/skill-gap-analyzer/internal/entities"
	"gorm.io/gorm"
)

type Jobs struct {
	db *gorm.DB
}

func NewJobsRepository(db *gorm.DB) *Jobs {
	return &Jobs{db: db}
}

func (repo *Jobs) Add(ctx context.Context, job *entities.Job) error {
	return repo.db.WithContext(ctx).Create(job).Error
}

func (repo *Jobs) GetAll(ctx context.Context) ([]entities.Job, error) {

	var jobs []entities.Job
	if err := repo.db.WithContext(ctx).
		Preload("Company").
		Preload("Applicants").
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (repo *Jobs) GetByID(ctx context.Context, id uint) (*entities.Job, error) {

	var job entities.Job
	if err := repo.db.WithContext(ctx).
		Preload("Company").
		Preload("Applicants").
		First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("job %v", id)
		}
		return nil, err
	}
	return &job, nil
}

// AddApplicant appends the user to the job's applicants. Repeated
// applications are no-ops, even concurrent ones: the unique index on the
// join table backstops the append and its violation is swallowed here.
func (repo *Jobs) AddApplicant(ctx context.Context, jobID uint, user *entities.User) error {

	job, err := repo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}

	err = repo.db.WithContext(ctx).Model(job).
		Association("Applicants").Append(user)
	if err != nil && isDuplicateKey(err) {
		return nil
	}
	return err
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(strings.ToLower(err.Error()), "unique constraint")
}
