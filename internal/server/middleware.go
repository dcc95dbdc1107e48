package server

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/soham164/skill-gap-analyzer/internal/apperrors"
	"github.com/soham164/skill-gap-analyzer/internal/entities"
	"github.com/soham164/skill-gap-analyzer/internal/metrics"
)

const currentUserKey = "currentUser"

func (s *Server) observeRequest(c *gin.Context) {

	start := time.Now()
	c.Next()

	path := c.FullPath()
	if path == "" {
		path = "unmatched"
	}

	metrics.RequestDuration.
		WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).
		Observe(time.Since(start).Seconds())
}

func (s *Server) abortWithError(c *gin.Context, err error) {

	status := apperrors.StatusCode(err)
	if status >= 500 {
		log.Errorf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func bearerToken(c *gin.Context) string {

	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// authenticate rejects requests without a valid bearer token and stores
// the resolved user in the request context.
func (s *Server) authenticate(c *gin.Context) {

	token := bearerToken(c)
	if token == "" {
		s.abortWithError(c, apperrors.Unauthorizedf("missing bearer token"))
		return
	}

	userID, err := s.tokens.Verify(token)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	user, err := s.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		// only a missing user invalidates the token; store failures stay 500s
		if errors.Is(err, apperrors.ErrNotFound) {
			err = apperrors.Unauthorizedf("unknown user %d", userID)
		}
		s.abortWithError(c, err)
		return
	}

	c.Set(currentUserKey, user)
	c.Next()
}

// identify resolves a bearer token when one is present but lets anonymous
// requests through. Analysis endpoints work without an account; a token
// only attributes the result to its owner.
func (s *Server) identify(c *gin.Context) {

	token := bearerToken(c)
	if token == "" {
		c.Next()
		return
	}

	userID, err := s.tokens.Verify(token)
	if err != nil {
		c.Next()
		return
	}

	if user, err := s.users.GetByID(c.Request.Context(), userID); err == nil {
		c.Set(currentUserKey, user)
	}
	c.Next()
}

func (s *Server) requireRole(role entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil || user.Role != role {
			s.abortWithError(c, apperrors.Forbiddenf("requires %s role", role))
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *entities.User {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil
	}
	user, _ := value.(*entities.User)
	return user
}
