package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/soham164/skill-gap-analyzer/internal/apperrors"
	"github.com/soham164/skill-gap-analyzer/internal/entities"
)

type createJobRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type jobResponse struct {
	ID             uint     `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
	CompanyID      uint     `json:"company_id"`
	CompanyName    string   `json:"company_name"`
	Applicants     int      `json:"applicants"`
}

func toJobResponse(job entities.Job) jobResponse {
	return jobResponse{
		ID:             job.ID,
		Title:          job.Title,
		Description:    job.Description,
		RequiredSkills: job.RequiredSkillsAsArray(),
		CompanyID:      job.CompanyID,
		CompanyName:    job.Company.Name,
		Applicants:     len(job.Applicants),
	}
}

func (s *Server) createJob(c *gin.Context) {

	var req createJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abortWithError(c, apperrors.Validationf("%v", err))
		return
	}

	company := currentUser(c)
	required := s.vocabulary.Match(req.Description)

	job := entities.NewJob(company.ID, req.Title, req.Description, required)
	if err := s.jobs.Add(c.Request.Context(), job); err != nil {
		s.abortWithError(c, err)
		return
	}

	job.Company = *company
	c.JSON(http.StatusCreated, toJobResponse(*job))
}

func (s *Server) listJobs(c *gin.Context) {

	jobs, err := s.jobs.GetAll(c.Request.Context())
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": lo.Map(jobs, func(job entities.Job, _ int) jobResponse {
		return toJobResponse(job)
	})})
}

func (s *Server) applyToJob(c *gin.Context) {

	jobID, err := strconv.ParseUint(c.Param("jobId"), 10, 32)
	if err != nil {
		s.abortWithError(c, apperrors.Validationf("invalid job id"))
		return
	}

	candidate := currentUser(c)
	if err := s.jobs.AddApplicant(c.Request.Context(), uint(jobID), candidate); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applied": true, "job_id": jobID})
}
