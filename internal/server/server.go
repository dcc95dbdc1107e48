package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/soham164/skill-gap-analyzer/internal/clients/analyzer"
	"github.com/soham164/skill-gap-analyzer/internal/entities"
	"github.com/soham164/skill-gap-analyzer/internal/parser"
	"github.com/soham164/skill-gap-analyzer/internal/services"
	"github.com/soham164/skill-gap-analyzer/internal/skills"
)

type userStore interface {
	Add(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uint) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
}

type jobStore interface {
	Add(ctx context.Context, job *entities.Job) error
	GetAll(ctx context.Context) ([]entities.Job, error)
	GetByID(ctx context.Context, id uint) (*entities.Job, error)
	AddApplicant(ctx context.Context, jobID uint, user *entities.User) error
}

type tokenIssuer interface {
	Issue(userID uint) (string, error)
	Verify(token string) (uint, error)
}

type analysisService interface {
	Analyze(ctx context.Context, req services.AnalysisRequest) (*analyzer.AnalysisResult, error)
	ExtractSkills(ctx context.Context, text, strategy string) (*analyzer.Extraction, error)
	GenerateLearningPath(ctx context.Context, skills []string, currentLevel, timeAvailable string) (*analyzer.LearningPath, error)
}

type resumeService interface {
	Intake(ctx context.Context, userID uint, path string) (*entities.Resume, error)
	GetByUser(ctx context.Context, userID uint) ([]entities.Resume, error)
}

type statsProvider interface {
	Current() services.Stats
}

type healthChecker interface {
	GetHealth(ctx context.Context) (*analyzer.Health, error)
}

// Server wires the HTTP API together. All domain work happens in the
// services and repositories it holds.
type Server struct {
	engine     *gin.Engine
	users      userStore
	jobs       jobStore
	tokens     tokenIssuer
	analysis   analysisService
	resumes    resumeService
	stats      statsProvider
	health     healthChecker
	extractor  parser.Extractor
	vocabulary *skills.Vocabulary
	uploadDir  string
}

func New(users userStore, jobs jobStore, tokens tokenIssuer, analysis analysisService,
	resumes resumeService, stats statsProvider, health healthChecker,
	extractor parser.Extractor, vocabulary *skills.Vocabulary, uploadDir string) *Server {

	s := &Server{
		engine:     gin.New(),
		users:      users,
		jobs:       jobs,
		tokens:     tokens,
		analysis:   analysis,
		resumes:    resumes,
		stats:      stats,
		health:     health,
		extractor:  extractor,
		vocabulary: vocabulary,
		uploadDir:  uploadDir,
	}

	s.engine.Use(gin.Recovery())
	s.engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))
	s.engine.Use(s.observeRequest)

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {

	api := s.engine.Group("/api")

	api.POST("/auth/sign-up", s.signUp)
	api.POST("/auth/sign-in", s.signIn)

	api.GET("/health", s.healthStatus)
	api.GET("/stats", s.statsStatus)
	api.GET("/skills/list", s.listSkills)

	authed := api.Group("")
	authed.Use(s.authenticate)
	{
		authed.PUT("/users/:id", s.updateUser)

		authed.POST("/jobs", s.requireRole(entities.RoleCompany), s.createJob)
		authed.GET("/jobs", s.listJobs)
		authed.POST("/jobs/:jobId/apply", s.requireRole(entities.RoleCandidate), s.applyToJob)

		authed.POST("/resumes/upload", s.requireRole(entities.RoleCandidate), s.uploadResume)
		authed.GET("/resumes", s.listResumes)
	}

	open := api.Group("")
	open.Use(s.identify)
	{
		open.POST("/skill-gap/analyze", s.analyzeUpload)
		open.POST("/skill-gap/analyze-json", s.analyzeJSON)
		open.POST("/skills/extract", s.extractSkills)
		open.POST("/recommendations/generate", s.generateRecommendations)
	}
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, port int) error {

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.engine,
	}

	errs := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errs <- err
		}
	}()

	log.Infof("http server listening on port %d", port)

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
