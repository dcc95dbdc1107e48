package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/soham164/skill-gap-analyzer/internal/apperrors"
	"golang.org/x/time/rate"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the external analysis service. Transport failures,
// timeouts and non-2xx responses all surface as ErrUpstreamUnavailable.
type Client struct {
	baseURL     string
	timeout     time.Duration
	httpClient  HTTPClient
	rateLimiter *rate.Limiter
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    timeout,
		httpClient: &http.Client{},
	}
}

func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

func (c *Client) SetRateLimit(maxRequestsPerSecond float32) {
	c.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1)
}

type analyzeRequest struct {
	ResumeText string `json:"resume_text"`
	JobText    string `json:"job_text"`
	Strategy   string `json:"strategy"`
	Detailed   bool   `json:"detailed"`
}

func (c *Client) AnalyzeSkillGap(ctx context.Context, resumeText, jobText, strategy string, detailed bool) (*AnalysisResult, error) {

	payload, err := json.Marshal(analyzeRequest{
		ResumeText: resumeText,
		JobText:    jobText,
		Strategy:   strategy,
		Detailed:   detailed,
	})
	if err != nil {
		return nil, fmt.Errorf("error encoding request: %v", err)
	}

	body, err := c.sendRequest(ctx, "POST", c.baseURL+"/api/skill-gap/analyze-json",
		"application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	var result AnalysisResult
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&result); err != nil {
		return nil, apperrors.Upstreamf("error decoding JSON response: %v", err)
	}

	return &result, nil
}

func (c *Client) ExtractSkills(ctx context.Context, text, strategy string) (*Extraction, error) {

	form := url.Values{}
	form.Add("text", text)
	form.Add("strategy", strategy)

	body, err := c.sendRequest(ctx, "POST", c.baseURL+"/api/skills/extract",
		"application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}

	var extraction Extraction
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&extraction); err != nil {
		return nil, apperrors.Upstreamf("error decoding JSON response: %v", err)
	}

	return &extraction, nil
}

func (c *Client) GenerateLearningPath(ctx context.Context, skills []string,
	currentLevel, timeAvailable string) (*LearningPath, error) {

	form := url.Values{}
	for _, skill := range skills {
		form.Add("skills", skill)
	}
	form.Add("current_level", currentLevel)
	form.Add("time_available", timeAvailable)

	body, err := c.sendRequest(ctx, "POST", c.baseURL+"/api/recommendations/generate",
		"application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}

	var path LearningPath
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&path); err != nil {
		return nil, apperrors.Upstreamf("error decoding JSON response: %v", err)
	}

	return &path, nil
}

func (c *Client) GetHealth(ctx context.Context) (*Health, error) {

	body, err := c.sendRequest(ctx, "GET", c.baseURL+"/api/health", "", nil)
	if err != nil {
		return nil, err
	}

	var health Health
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&health); err != nil {
		return nil, apperrors.Upstreamf("error decoding JSON response: %v", err)
	}

	return &health, nil
}

func (c *Client) sendRequest(ctx context.Context, method string, url string,
	contentType string, body io.Reader) ([]byte, error) {

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Upstreamf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	return c.handleResponse(resp)
}

func (c *Client) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Upstreamf("error reading response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.Upstreamf("request failed with status %v, body: %v",
			resp.StatusCode, string(body))
	}

	return body, nil
}
