package server

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/soham164/skill-gap-analyzer/internal/apperrors"
	"github.com/soham164/skill-gap-analyzer/internal/services"
)

// analyzeUpload accepts a resume document plus job text as multipart form
// data, extracts the resume text locally and runs the gap analysis.
func (s *Server) analyzeUpload(c *gin.Context) {

	jobText := c.PostForm("job_text")
	if jobText == "" {
		s.abortWithError(c, apperrors.Validationf("missing job_text field"))
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		s.abortWithError(c, apperrors.Validationf("missing file field"))
		return
	}

	path, err := s.saveUpload(c, file)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	defer func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Errorf("failed to remove uploaded file %s: %v", path, err)
		}
	}()

	parsed, err := s.extractor.Parse(c.Request.Context(), path)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	req := services.AnalysisRequest{
		ResumeText: parsed.Text,
		JobText:    jobText,
		Strategy:   c.PostForm("strategy"),
		Detailed:   c.PostForm("detailed") == "true",
	}
	if user := currentUser(c); user != nil {
		req.UserID = user.ID
	}

	result, err := s.analysis.Analyze(c.Request.Context(), req)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

type analyzeJSONRequest struct {
	ResumeText string `json:"resume_text"`
	ResumeID   uint   `json:"resume_id"`
	JobText    string `json:"job_text"`
	JobID      uint   `json:"job_id"`
	Strategy   string `json:"strategy"`
	Detailed   bool   `json:"detailed"`
}

func (s *Server) analyzeJSON(c *gin.Context) {

	var body analyzeJSONRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		s.abortWithError(c, apperrors.Validationf("%v", err))
		return
	}

	req := services.AnalysisRequest{
		ResumeText: body.ResumeText,
		ResumeID:   body.ResumeID,
		JobText:    body.JobText,
		JobID:      body.JobID,
		Strategy:   body.Strategy,
		Detailed:   body.Detailed,
	}
	if user := currentUser(c); user != nil {
		req.UserID = user.ID
	}

	result, err := s.analysis.Analyze(c.Request.Context(), req)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) extractSkills(c *gin.Context) {

	text := c.PostForm("text")
	if text == "" {
		s.abortWithError(c, apperrors.Validationf("missing text field"))
		return
	}

	extraction, err := s.analysis.ExtractSkills(c.Request.Context(), text, c.PostForm("strategy"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, extraction)
}

func (s *Server) generateRecommendations(c *gin.Context) {

	skills := c.PostFormArray("skills")

	path, err := s.analysis.GenerateLearningPath(c.Request.Context(), skills,
		c.DefaultPostForm("current_level", "beginner"),
		c.DefaultPostForm("time_available", "5 hours/week"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, path)
}
