package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/soham164/skill-gap-analyzer/internal/clients/analyzer"
	"github.com/soham164/skill-gap-analyzer/internal/entities"
	"github.com/soham164/skill-gap-analyzer/internal/parser"
)

type mockAnalyzerClient struct {
	mock.Mock
}

func (m *mockAnalyzerClient) AnalyzeSkillGap(ctx context.Context, resumeText, jobText, strategy string, detailed bool) (*analyzer.AnalysisResult, error) {
	args := m.Called(ctx, resumeText, jobText, strategy, detailed)
	result, _ := args.Get(0).(*analyzer.AnalysisResult)
	return result, args.Error(1)
}

func (m *mockAnalyzerClient) ExtractSkills(ctx context.Context, text, strategy string) (*analyzer.Extraction, error) {
	args := m.Called(ctx, text, strategy)
	extraction, _ := args.Get(0).(*analyzer.Extraction)
	return extraction, args.Error(1)
}

func (m *mockAnalyzerClient) GenerateLearningPath(ctx context.Context, skills []string, currentLevel, timeAvailable string) (*analyzer.LearningPath, error) {
	args := m.Called(ctx, skills, currentLevel, timeAvailable)
	path, _ := args.Get(0).(*analyzer.LearningPath)
	return path, args.Error(1)
}

type mockResumeRepository struct {
	mock.Mock
}

func (m *mockResumeRepository) Add(ctx context.Context, resume *entities.Resume) error {
	args := m.Called(ctx, resume)
	return args.Error(0)
}

func (m *mockResumeRepository) GetByID(ctx context.Context, id uint) (*entities.Resume, error) {
	args := m.Called(ctx, id)
	resume, _ := args.Get(0).(*entities.Resume)
	return resume, args.Error(1)
}

func (m *mockResumeRepository) GetByUser(ctx context.Context, userID uint) ([]entities.Resume, error) {
	args := m.Called(ctx, userID)
	resumes, _ := args.Get(0).([]entities.Resume)
	return resumes, args.Error(1)
}

type mockJobRepository struct {
	mock.Mock
}

func (m *mockJobRepository) GetByID(ctx context.Context, id uint) (*entities.Job, error) {
	args := m.Called(ctx, id)
	job, _ := args.Get(0).(*entities.Job)
	return job, args.Error(1)
}

type mockExtractor struct {
	mock.Mock
}

func (m *mockExtractor) Parse(ctx context.Context, path string) (*parser.Parsed, error) {
	args := m.Called(ctx, path)
	parsed, _ := args.Get(0).(*parser.Parsed)
	return parsed, args.Error(1)
}
