package loki

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"github.com/go-playground/validator/v10"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"
)

type Logger interface {
	Error(msg string, args ...any)
}

type Config struct {
	// Url of the loki server, e.g. https://example-prod.grafana.net/loki/api/v1/push
	Url string `validate:"required"`

	// BatchMaxSize is the maximum number of log lines buffered before a push
	BatchMaxSize int `validate:"gte=1"`

	// BatchMaxWait is the maximum time a buffered line waits before a push
	BatchMaxWait time.Duration `validate:"gte=1"`

	// Labels added to the single stream all lines are pushed under
	Labels map[string]string

	// Optional basic auth credentials
	Username string
	Password string
}

func (cfg *Config) setDefaults() {
	if cfg.BatchMaxSize == 0 {
		cfg.BatchMaxSize = 1000
	}
	if cfg.BatchMaxWait == 0 {
		cfg.BatchMaxWait = 5 * time.Second
	}
	if cfg.Labels == nil {
		cfg.Labels = map[string]string{}
	}
}

type LogEntry struct {
	Level   string `json:"level"`
	Message string `json:"msg"`
	Caller  string `json:"caller"`
}

type pushRequest struct {
	Streams []stream `json:"streams"`
}

type stream struct {
	Stream map[string]string `json:"stream"`
	Values [][]string        `json:"values"`
}

// Pusher buffers log entries and ships them to Loki in gzipped batches.
type Pusher struct {
	config Config
	client *http.Client
	logger Logger

	mu     sync.Mutex
	buffer [][]string

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

func New(ctx context.Context, cfg Config, logger Logger) (*Pusher, error) {

	cfg.setDefaults()
	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	p := &Pusher{
		config: cfg,
		client: &http.Client{},
		logger: logger,
		buffer: make([][]string, 0, cfg.BatchMaxSize),
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go p.run()
	return p, nil
}

// Push buffers one entry; the batch is flushed when full or on timer.
func (p *Pusher) Push(e LogEntry) error {
	line, err := json.Marshal(e)
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.buffer = append(p.buffer, []string{
		strconv.FormatInt(time.Now().UnixNano(), 10),
		string(line),
	})
	full := len(p.buffer) >= p.config.BatchMaxSize
	p.mu.Unlock()

	if full {
		p.flush()
	}
	return nil
}

// Stop flushes remaining entries and stops the background flusher.
func (p *Pusher) Stop() {
	p.cancel()
	<-p.done
	p.flush()
}

func (p *Pusher) run() {
	ticker := time.NewTicker(p.config.BatchMaxWait)
	defer ticker.Stop()
	defer close(p.done)

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.flush()
		}
	}
}

func (p *Pusher) flush() {
	p.mu.Lock()
	if len(p.buffer) == 0 {
		p.mu.Unlock()
		return
	}
	batch := p.buffer
	p.buffer = make([][]string, 0, p.config.BatchMaxSize)
	p.mu.Unlock()

	if err := p.send(batch); err != nil {
		p.logger.Error("failed to send logs", "error", err)
	}
}

func (p *Pusher) send(batch [][]string) error {
	buf := &bytes.Buffer{}
	gz := gzip.NewWriter(buf)

	if err := json.NewEncoder(gz).Encode(pushRequest{Streams: []stream{{
		Stream: p.config.Labels,
		Values: batch,
	}}}); err != nil {
		return err
	}

	if err := gz.Close(); err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, p.config.Url, buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")

	if p.config.Username != "" && p.config.Password != "" {
		req.SetBasicAuth(p.config.Username, p.config.Password)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("received unexpected response code from Loki: %s, body: %s", resp.Status, string(body))
	}

	return nil
}
