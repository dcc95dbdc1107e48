package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/soham164/skill-gap-analyzer/internal/apperrors"
	"github.com/soham164/skill-gap-analyzer/internal/auth"
	"github.com/soham164/skill-gap-analyzer/internal/entities"
)

type signUpRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
}

type signInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	Token string         `json:"token"`
	User  *entities.User `json:"user"`
}

func (s *Server) signUp(c *gin.Context) {

	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abortWithError(c, apperrors.Validationf("%v", err))
		return
	}

	role, err := entities.ToRole(req.Role)
	if err != nil {
		s.abortWithError(c, apperrors.Validationf("role must be candidate or company"))
		return
	}

	existing, err := s.users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	if existing != nil {
		s.abortWithError(c, apperrors.Validationf("email %s is already registered", req.Email))
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	user := &entities.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Add(c.Request.Context(), user); err != nil {
		s.abortWithError(c, err)
		return
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, authResponse{Token: token, User: user})
}

func (s *Server) signIn(c *gin.Context) {

	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abortWithError(c, apperrors.Validationf("%v", err))
		return
	}

	user, err := s.users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		s.abortWithError(c, apperrors.Unauthorizedf("invalid email or password"))
		return
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

type updateUserRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (s *Server) updateUser(c *gin.Context) {

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		s.abortWithError(c, apperrors.Validationf("invalid user id"))
		return
	}

	user := currentUser(c)
	if user.ID != uint(id) {
		s.abortWithError(c, apperrors.Forbiddenf("cannot update another user"))
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abortWithError(c, apperrors.Validationf("%v", err))
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			s.abortWithError(c, err)
			return
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(c.Request.Context(), user); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
