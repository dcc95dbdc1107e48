package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (s *Server) healthStatus(c *gin.Context) {

	response := gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	upstream, err := s.health.GetHealth(c.Request.Context())
	if err != nil {
		response["analyzer"] = gin.H{"status": "unreachable"}
	} else {
		response["analyzer"] = upstream
	}

	c.JSON(http.StatusOK, response)
}

func (s *Server) statsStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.stats.Current())
}

func (s *Server) listSkills(c *gin.Context) {

	byCategory := make(map[string][]string)
	for _, entry := range s.vocabulary.Entries() {
		byCategory[entry.Category] = append(byCategory[entry.Category], entry.Name)
	}

	c.JSON(http.StatusOK, gin.H{
		"total_skills": len(s.vocabulary.Names()),
		"categories":   byCategory,
	})
}
