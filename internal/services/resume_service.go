package services

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/soham164/skill-gap-analyzer/internal/entities"
	"github.com/soham164/skill-gap-analyzer/internal/logger"
	"github.com/soham164/skill-gap-analyzer/internal/metrics"
	"github.com/soham164/skill-gap-analyzer/internal/parser"
)

type resumeRepository interface {
	Add(ctx context.Context, resume *entities.Resume) error
	GetByUser(ctx context.Context, userID uint) ([]entities.Resume, error)
}

// ResumeService turns an uploaded document into a stored resume: it runs
// the extractor on the saved file, persists the parsed text and skills and
// always removes the file afterwards.
type ResumeService struct {
	extractor parser.Extractor
	resumes   resumeRepository
}

func NewResumeService(extractor parser.Extractor, resumes resumeRepository) *ResumeService {
	return &ResumeService{extractor: extractor, resumes: resumes}
}

func (s *ResumeService) Intake(ctx context.Context, userID uint, path string) (*entities.Resume, error) {

	defer func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeParser).
				Errorf("failed to remove uploaded file %s: %v", path, err)
		}
	}()

	parsed, err := s.extractor.Parse(ctx, path)
	if err != nil {
		return nil, err
	}

	resume := entities.NewResume(userID, parsed.Text, parsed.Skills)
	if err := s.resumes.Add(ctx, resume); err != nil {
		return nil, err
	}

	metrics.ParsedResumesCounter.Inc()
	return resume, nil
}

func (s *ResumeService) GetByUser(ctx context.Context, userID uint) ([]entities.Resume, error) {
	return s.resumes.GetByUser(ctx, userID)
}
