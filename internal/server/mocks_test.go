package server

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/soham164/skill-gap-analyzer/internal/clients/analyzer"
	"github.com/soham164/skill-gap-analyzer/internal/entities"
	"github.com/soham164/skill-gap-analyzer/internal/parser"
	"github.com/soham164/skill-gap-analyzer/internal/services"
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) Add(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserStore) GetByID(ctx context.Context, id uint) (*entities.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entities.User)
	return user, args.Error(1)
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entities.User)
	return user, args.Error(1)
}

func (m *mockUserStore) Update(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type mockJobStore struct {
	mock.Mock
}

func (m *mockJobStore) Add(ctx context.Context, job *entities.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *mockJobStore) GetAll(ctx context.Context) ([]entities.Job, error) {
	args := m.Called(ctx)
	jobs, _ := args.Get(0).([]entities.Job)
	return jobs, args.Error(1)
}

func (m *mockJobStore) GetByID(ctx context.Context, id uint) (*entities.Job, error) {
	args := m.Called(ctx, id)
	job, _ := args.Get(0).(*entities.Job)
	return job, args.Error(1)
}

func (m *mockJobStore) AddApplicant(ctx context.Context, jobID uint, user *entities.User) error {
	args := m.Called(ctx, jobID, user)
	return args.Error(0)
}

type mockAnalysisService struct {
	mock.Mock
}

func (m *mockAnalysisService) Analyze(ctx context.Context, req services.AnalysisRequest) (*analyzer.AnalysisResult, error) {
	args := m.Called(ctx, req)
	result, _ := args.Get(0).(*analyzer.AnalysisResult)
	return result, args.Error(1)
}

func (m *mockAnalysisService) ExtractSkills(ctx context.Context, text, strategy string) (*analyzer.Extraction, error) {
	args := m.Called(ctx, text, strategy)
	extraction, _ := args.Get(0).(*analyzer.Extraction)
	return extraction, args.Error(1)
}

func (m *mockAnalysisService) GenerateLearningPath(ctx context.Context, skills []string, currentLevel, timeAvailable string) (*analyzer.LearningPath, error) {
	args := m.Called(ctx, skills, currentLevel, timeAvailable)
	path, _ := args.Get(0).(*analyzer.LearningPath)
	return path, args.Error(1)
}

type mockResumeService struct {
	mock.Mock
}

func (m *mockResumeService) Intake(ctx context.Context, userID uint, path string) (*entities.Resume, error) {
	args := m.Called(ctx, userID, path)
	resume, _ := args.Get(0).(*entities.Resume)
	return resume, args.Error(1)
}

func (m *mockResumeService) GetByUser(ctx context.Context, userID uint) ([]entities.Resume, error) {
	args := m.Called(ctx, userID)
	resumes, _ := args.Get(0).([]entities.Resume)
	return resumes, args.Error(1)
}

type mockHealthChecker struct {
	mock.Mock
}

func (m *mockHealthChecker) GetHealth(ctx context.Context) (*analyzer.Health, error) {
	args := m.Called(ctx)
	health, _ := args.Get(0).(*analyzer.Health)
	return health, args.Error(1)
}

type stubStats struct {
	stats services.Stats
}

func (s *stubStats) Current() services.Stats {
	return s.stats
}

type mockExtractor struct {
	mock.Mock
}

func (m *mockExtractor) Parse(ctx context.Context, path string) (*parser.Parsed, error) {
	args := m.Called(ctx, path)
	parsed, _ := args.Get(0).(*parser.Parsed)
	return parsed, args.Error(1)
}
