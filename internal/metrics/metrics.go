package metrics

import (
	"fmt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"net/http"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of handled HTTP requests in seconds.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		},
		[]string{"method", "path", "status"},
	)
	AnalysisStepDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "api_analysis_step_duration_seconds",
			Help:       "Duration of each step in the skill gap analysis process.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"step"},
	)
	AnalysesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "api_analyses_total",
			Help: "Total number of completed skill gap analyses.",
		},
	)
	AnalysisCacheHitsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "api_analysis_cache_hits_total",
			Help: "Total number of analyses served from the result cache.",
		},
	)
	ParsedResumesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "api_resumes_parsed_total",
			Help: "Total number of successfully parsed resumes.",
		},
	)
)

func StartMetricsServer(port int) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(AnalysisStepDuration)
	prometheus.MustRegister(AnalysesCounter)
	prometheus.MustRegister(AnalysisCacheHitsCounter)
	prometheus.MustRegister(ParsedResumesCounter)

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), nil))
	}()
}
