package server

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soham164/skill-gap-analyzer/internal/apperrors"
)

const maxUploadSize = 10 << 20

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
}

// saveUpload stores the uploaded file under the upload directory with a
// collision-free name. The caller owns the file afterwards.
func (s *Server) saveUpload(c *gin.Context, file *multipart.FileHeader) (string, error) {

	if file.Size > maxUploadSize {
		return "", apperrors.Validationf("file exceeds %d bytes", maxUploadSize)
	}

	ext := filepath.Ext(file.Filename)
	if !allowedExtensions[ext] {
		return "", apperrors.Validationf("unsupported file type %q, expected pdf, docx or txt", ext)
	}

	if err := os.MkdirAll(s.uploadDir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(s.uploadDir, fmt.Sprintf("%d%s", time.Now().UnixNano(), ext))
	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", err
	}
	return path, nil
}

func (s *Server) uploadResume(c *gin.Context) {

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

	user := currentUser(c)
	resume, err := s.resumes.Intake(c.Request.Context(), user.ID, path)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":     resume.ID,
		"skills": resume.SkillsAsArray(),
		"text":   resume.Text,
	})
}

func (s *Server) listResumes(c *gin.Context) {

	user := currentUser(c)
	resumes, err := s.resumes.GetByUser(c.Request.Context(), user.ID)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	type resumeSummary struct {
		ID        uint      `json:"id"`
		Skills    []string  `json:"skills"`
		CreatedAt time.Time `json:"created_at"`
	}

	summaries := make([]resumeSummary, 0, len(resumes))
	for _, resume := range resumes {
		summaries = append(summaries, resumeSummary{
			ID:        resume.ID,
			Skills:    resume.SkillsAsArray(),
			CreatedAt: resume.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"resumes": summaries})
}
