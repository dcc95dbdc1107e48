package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"

	"github.com/soham164/skill-gap-analyzer/internal/auth"
	"github.com/soham164/skill-gap-analyzer/internal/clients/analyzer"
	"github.com/soham164/skill-gap-analyzer/internal/config"
	"github.com/soham164/skill-gap-analyzer/internal/logger"
	"github.com/soham164/skill-gap-analyzer/internal/metrics"
	"github.com/soham164/skill-gap-analyzer/internal/parser"
	"github.com/soham164/skill-gap-analyzer/internal/repositories"
	"github.com/soham164/skill-gap-analyzer/internal/server"
	"github.com/soham164/skill-gap-analyzer/internal/services"
	"github.com/soham164/skill-gap-analyzer/internal/skills"
)

func newExtractor(cfg config.ParserConfig) parser.Extractor {
	if cfg.Command != "" {
		return parser.NewCommandExtractor(cfg.Command, cfg.CommandTimeout)
	}
	return parser.NewDocumentExtractor(skills.Default())
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()
	if err := logger.SetupLoki(ctx, cfg.Logger); err != nil {
		log.Errorf("can't setup loki hook: %v", err)
	}

	metrics.StartMetricsServer(cfg.Server.MetricsPort)

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	if err = dbContext.Migrate(); err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	users := repositories.NewUsersRepository(dbContext.DB)
	jobs := repositories.NewJobsRepository(dbContext.DB)
	resumes := repositories.NewResumesRepository(dbContext.DB)

	analyzerClient := analyzer.NewClient(cfg.Analyzer.BaseURL, cfg.Analyzer.RequestTimeout)
	analyzerClient.SetRateLimit(cfg.Analyzer.MaxRequestsPerSecond)

	bus := EventBus.New()

	stats, err := services.NewStatsService(bus)
	if err != nil {
		log.Fatalf("can't create stats service: %v", err)
	}

	cleaner, err := services.NewUploadsCleaner(cfg.Parser.UploadDir, cfg.Parser.UploadMaxAge, cfg.Parser.CleanupSchedule)
	if err != nil {
		log.Fatalf("can't create uploads cleaner: %v", err)
	}
	defer cleaner.Stop()

	extractor := newExtractor(cfg.Parser)
	analysisService := services.NewAnalysisService(analyzerClient, resumes, jobs, bus, cfg.Analyzer.CacheTTL)
	resumeService := services.NewResumeService(extractor, resumes)
	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	api := server.New(users, jobs, tokens, analysisService, resumeService,
		stats, analyzerClient, extractor, skills.Default(), cfg.Parser.UploadDir)

	if err := api.Run(ctx, cfg.Server.Port); err != nil {
		log.Fatalf("http server failed: %v", err)
	}

	log.Info("Server stopped.")
}
