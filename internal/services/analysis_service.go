package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/asaskevich/EventBus"
	gocache "github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"

	"github.com/soham164/skill-gap-analyzer/internal/apperrors"
	"github.com/soham164/skill-gap-analyzer/internal/clients/analyzer"
	"github.com/soham164/skill-gap-analyzer/internal/entities"
	"github.com/soham164/skill-gap-analyzer/internal/events"
	"github.com/soham164/skill-gap-analyzer/internal/metrics"
)

const DefaultStrategy = "hybrid"

type analyzerClient interface {
	AnalyzeSkillGap(ctx context.Context, resumeText, jobText, strategy string, detailed bool) (*analyzer.AnalysisResult, error)
	ExtractSkills(ctx context.Context, text, strategy string) (*analyzer.Extraction, error)
	GenerateLearningPath(ctx context.Context, skills []string, currentLevel, timeAvailable string) (*analyzer.LearningPath, error)
}

type resumeResolver interface {
	GetByID(ctx context.Context, id uint) (*entities.Resume, error)
}

type jobResolver interface {
	GetByID(ctx context.Context, id uint) (*entities.Job, error)
}

// AnalysisRequest carries either literal texts or identifiers to resolve.
type AnalysisRequest struct {
	UserID     uint
	ResumeText string
	ResumeID   uint
	JobText    string
	JobID      uint
	Strategy   string

	// Detailed asks the analysis service to include per-skill
	// recommendations in the result.
	Detailed bool
}

// AnalysisService orchestrates skill gap analysis: it resolves resume and
// job text, forwards one request to the analysis service and relays the
// normalized result. Results are cached per (resume, job, strategy).
type AnalysisService struct {
	client   analyzerClient
	resumes  resumeResolver
	jobs     jobResolver
	bus      EventBus.Bus
	cache    *gocache.Cache
	cacheTTL time.Duration
}

func NewAnalysisService(client analyzerClient, resumes resumeResolver, jobs jobResolver,
	bus EventBus.Bus, cacheTTL time.Duration) *AnalysisService {

	if cacheTTL <= 0 {
		cacheTTL = time.Hour
	}

	return &AnalysisService{
		client:   client,
		resumes:  resumes,
		jobs:     jobs,
		bus:      bus,
		cache:    gocache.New(cacheTTL, 2*cacheTTL),
		cacheTTL: cacheTTL,
	}
}

func (s *AnalysisService) Analyze(ctx context.Context, req AnalysisRequest) (*analyzer.AnalysisResult, error) {

	resumeText, jobText, err := s.resolveTexts(ctx, req)
	if err != nil {
		return nil, err
	}

	strategy := req.Strategy
	if strategy == "" {
		strategy = DefaultStrategy
	}

	cacheID := analysisCacheID(resumeText, jobText, strategy, req.Detailed)
	if cached, found := s.cache.Get(cacheID); found {
		metrics.AnalysisCacheHitsCounter.Inc()
		result := cached.(analyzer.AnalysisResult)
		s.publishCompleted(req.UserID, &result, true)
		return &result, nil
	}

	start := time.Now()
	result, err := s.client.AnalyzeSkillGap(ctx, resumeText, jobText, strategy, req.Detailed)
	metrics.AnalysisStepDuration.WithLabelValues("upstream_analysis").Observe(time.Since(start).Seconds())

	if err != nil {
		return nil, err
	}

	if cacheErr := s.cache.Add(cacheID, *result, gocache.DefaultExpiration); cacheErr != nil {
		log.Errorf("failed to add analysis result to cache: %v", cacheErr)
	}

	metrics.AnalysesCounter.Inc()
	s.publishCompleted(req.UserID, result, false)
	return result, nil
}

func (s *AnalysisService) ExtractSkills(ctx context.Context, text, strategy string) (*analyzer.Extraction, error) {

	if strategy == "" {
		strategy = DefaultStrategy
	}

	start := time.Now()
	extraction, err := s.client.ExtractSkills(ctx, text, strategy)
	metrics.AnalysisStepDuration.WithLabelValues("upstream_extraction").Observe(time.Since(start).Seconds())

	return extraction, err
}

func (s *AnalysisService) GenerateLearningPath(ctx context.Context, skills []string,
	currentLevel, timeAvailable string) (*analyzer.LearningPath, error) {

	if len(skills) == 0 {
		return nil, apperrors.Validationf("no skills provided")
	}

	return s.client.GenerateLearningPath(ctx, skills, currentLevel, timeAvailable)
}

func (s *AnalysisService) resolveTexts(ctx context.Context, req AnalysisRequest) (string, string, error) {

	resumeText := req.ResumeText
	if resumeText == "" {
		if req.ResumeID == 0 {
			return "", "", apperrors.Validationf("either resume_text or resume_id must be provided")
		}
		resume, err := s.resumes.GetByID(ctx, req.ResumeID)
		if err != nil {
			return "", "", err
		}
		resumeText = resume.Text
	}

	jobText := req.JobText
	if jobText == "" {
		if req.JobID == 0 {
			return "", "", apperrors.Validationf("either job_text or job_id must be provided")
		}
		job, err := s.jobs.GetByID(ctx, req.JobID)
		if err != nil {
			return "", "", err
		}
		jobText = job.Description
	}

	return resumeText, jobText, nil
}

func (s *AnalysisService) publishCompleted(userID uint, result *analyzer.AnalysisResult, fromCache bool) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(events.AnalysisCompletedTopic, events.AnalysisCompleted{
		UserID:          userID,
		MatchPercentage: result.MatchPercentage,
		MatchedSkills:   len(result.MatchedSkills),
		MissingSkills:   len(result.MissingSkills),
		FromCache:       fromCache,
	})
}

func analysisCacheID(resumeText, jobText, strategy string, detailed bool) string {
	sum := sha256.Sum256([]byte(resumeText + "|" + jobText + "|" + strategy + "|" + strconv.FormatBool(detailed)))
	return hex.EncodeToString(sum[:])
}
