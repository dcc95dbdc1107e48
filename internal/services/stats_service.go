package services

import (
	"sync"

	"github.com/asaskevich/EventBus"

	"github.com/soham164/skill-gap-analyzer/internal/events"
)

// Stats is an aggregate over completed analyses since startup.
type Stats struct {
	TotalAnalyses       int     `json:"total_analyses"`
	CacheHits           int     `json:"cache_hits"`
	AverageMatchPercent float64 `json:"average_match_percentage"`
	TotalMissingSkills  int     `json:"total_missing_skills"`
}

// StatsService subscribes to analysis completion events and keeps
// in-memory aggregates.
type StatsService struct {
	mu       sync.Mutex
	analyses int
	hits     int
	matchSum float64
	missing  int
}

func NewStatsService(bus EventBus.Bus) (*StatsService, error) {
	s := &StatsService{}
	if err := bus.Subscribe(events.AnalysisCompletedTopic, s.onAnalysisCompleted); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *StatsService) onAnalysisCompleted(event events.AnalysisCompleted) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.analyses++
	if event.FromCache {
		s.hits++
	}
	s.matchSum += event.MatchPercentage
	s.missing += event.MissingSkills
}

func (s *StatsService) Current() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := Stats{
		TotalAnalyses:      s.analyses,
		CacheHits:          s.hits,
		TotalMissingSkills: s.missing,
	}
	if s.analyses > 0 {
		stats.AverageMatchPercent = s.matchSum / float64(s.analyses)
	}
	return stats
}
