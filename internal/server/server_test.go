package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/soham164/skill-gap-analyzer/internal/apperrors"
	"github.com/soham164/skill-gap-analyzer/internal/auth"
	"github.com/soham164/skill-gap-analyzer/internal/clients/analyzer"
	"github.com/soham164/skill-gap-analyzer/internal/entities"
	"github.com/soham164/skill-gap-analyzer/internal/parser"
	"github.com/soham164/skill-gap-analyzer/internal/services"
	"github.com/soham164/skill-gap-analyzer/internal/skills"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type testServer struct {
	server   *Server
	users    *mockUserStore
	jobs     *mockJobStore
	analysis *mockAnalysisService
	resumes  *mockResumeService
	health   *mockHealthChecker
	extract  *mockExtractor
	tokens   *auth.TokenIssuer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ts := &testServer{
		users:    &mockUserStore{},
		jobs:     &mockJobStore{},
		analysis: &mockAnalysisService{},
		resumes:  &mockResumeService{},
		health:   &mockHealthChecker{},
		extract:  &mockExtractor{},
		tokens:   auth.NewTokenIssuer("test-secret", time.Hour),
	}
	ts.server = New(ts.users, ts.jobs, ts.tokens, ts.analysis, ts.resumes,
		&stubStats{}, ts.health, ts.extract, skills.Default(), t.TempDir())
	return ts
}

func (ts *testServer) loginAs(t *testing.T, user *entities.User) string {
	t.Helper()
	token, err := ts.tokens.Issue(user.ID)
	assert.NoError(t, err)
	ts.users.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	return token
}

func (ts *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	ts.server.engine.ServeHTTP(recorder, req)
	return recorder
}

func jsonRequest(method, url string, body any) *http.Request {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(method, url, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func candidate() *entities.User {
	return &entities.User{ID: 1, Name: "Sam", Email: "sam@example.com", Role: entities.RoleCandidate}
}

func company() *entities.User {
	return &entities.User{ID: 2, Name: "Acme", Email: "hr@acme.com", Role: entities.RoleCompany}
}

func Test_SignUp_CreatesUserAndReturnsToken(t *testing.T) {

	ts := newTestServer(t)
	ts.users.On("GetByEmail", mock.Anything, "sam@example.com").Return(nil, nil)
	ts.users.On("Add", mock.Anything, mock.MatchedBy(func(user *entities.User) bool {
		return user.Email == "sam@example.com" && user.Role == entities.RoleCandidate &&
			user.PasswordHash != "" && user.PasswordHash != "secret123"
	})).Return(nil)

	resp := ts.do(jsonRequest(http.MethodPost, "/api/auth/sign-up", gin.H{
		"name": "Sam", "email": "sam@example.com", "password": "secret123", "role": "candidate",
	}))

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body authResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Token)
	ts.users.AssertExpectations(t)
}

func Test_SignUp_DuplicateEmailFails(t *testing.T) {

	ts := newTestServer(t)
	ts.users.On("GetByEmail", mock.Anything, "sam@example.com").Return(candidate(), nil)

	resp := ts.do(jsonRequest(http.MethodPost, "/api/auth/sign-up", gin.H{
		"name": "Sam", "email": "sam@example.com", "password": "secret123", "role": "candidate",
	}))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func Test_SignUp_InvalidRoleFails(t *testing.T) {

	ts := newTestServer(t)

	resp := ts.do(jsonRequest(http.MethodPost, "/api/auth/sign-up", gin.H{
		"name": "Sam", "email": "sam@example.com", "password": "secret123", "role": "admin",
	}))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func Test_SignIn_WrongPasswordIsUnauthorized(t *testing.T) {

	hash, err := auth.HashPassword("correct-password")
	assert.NoError(t, err)

	user := candidate()
	user.PasswordHash = hash

	ts := newTestServer(t)
	ts.users.On("GetByEmail", mock.Anything, "sam@example.com").Return(user, nil)

	resp := ts.do(jsonRequest(http.MethodPost, "/api/auth/sign-in", gin.H{
		"email": "sam@example.com", "password": "wrong-password",
	}))

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func Test_SignIn_ReturnsTokenForValidCredentials(t *testing.T) {

	hash, err := auth.HashPassword("correct-password")
	assert.NoError(t, err)

	user := candidate()
	user.PasswordHash = hash

	ts := newTestServer(t)
	ts.users.On("GetByEmail", mock.Anything, "sam@example.com").Return(user, nil)

	resp := ts.do(jsonRequest(http.MethodPost, "/api/auth/sign-in", gin.H{
		"email": "sam@example.com", "password": "correct-password",
	}))

	assert.Equal(t, http.StatusOK, resp.Code)

	var body authResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	userID, err := ts.tokens.Verify(body.Token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func Test_UpdateUser_CannotUpdateAnotherUser(t *testing.T) {

	ts := newTestServer(t)
	token := ts.loginAs(t, candidate())

	req := jsonRequest(http.MethodPut, "/api/users/99", gin.H{"name": "Mallory"})
	req.Header.Set("Authorization", "Bearer "+token)

	resp := ts.do(req)
	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func Test_UpdateUser_SelfUpdateWorks(t *testing.T) {

	user := candidate()
	ts := newTestServer(t)
	token := ts.loginAs(t, user)
	ts.users.On("Update", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
		return u.ID == user.ID && u.Name == "Samuel"
	})).Return(nil)

	req := jsonRequest(http.MethodPut, "/api/users/1", gin.H{"name": "Samuel"})
	req.Header.Set("Authorization", "Bearer "+token)

	resp := ts.do(req)
	assert.Equal(t, http.StatusOK, resp.Code)
	ts.users.AssertExpectations(t)
}

func Test_CreateJob_RequiresCompanyRole(t *testing.T) {

	ts := newTestServer(t)
	token := ts.loginAs(t, candidate())

	req := jsonRequest(http.MethodPost, "/api/jobs", gin.H{
		"title": "Backend Engineer", "description": "Go and PostgreSQL",
	})
	req.Header.Set("Authorization", "Bearer "+token)

	resp := ts.do(req)
	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func Test_CreateJob_ExtractsRequiredSkillsFromDescription(t *testing.T) {

	ts := newTestServer(t)
	token := ts.loginAs(t, company())
	ts.jobs.On("Add", mock.Anything, mock.MatchedBy(func(job *entities.Job) bool {
		required := job.RequiredSkillsAsArray()
		return lo.Contains(required, "python") && lo.Contains(required, "react")
	})).Return(nil)

	req := jsonRequest(http.MethodPost, "/api/jobs", gin.H{
		"title": "Fullstack Engineer", "description": "We need Python and React experience",
	})
	req.Header.Set("Authorization", "Bearer "+token)

	resp := ts.do(req)
	assert.Equal(t, http.StatusCreated, resp.Code)
	ts.jobs.AssertExpectations(t)
}

func Test_ListJobs_RequiresAuthentication(t *testing.T) {

	ts := newTestServer(t)

	resp := ts.do(httptest.NewRequest(http.MethodGet, "/api/jobs", nil))
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func Test_Authenticate_UnknownUserIsUnauthorized(t *testing.T) {

	ts := newTestServer(t)
	token, err := ts.tokens.Issue(7)
	assert.NoError(t, err)
	ts.users.On("GetByID", mock.Anything, uint(7)).Return(nil, apperrors.NotFoundf("user 7"))

	req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp := ts.do(req)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func Test_Authenticate_StoreFailureIsNotUnauthorized(t *testing.T) {

	ts := newTestServer(t)
	token, err := ts.tokens.Issue(7)
	assert.NoError(t, err)
	ts.users.On("GetByID", mock.Anything, uint(7)).Return(nil, errors.New("database is locked"))

	req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp := ts.do(req)
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func Test_ApplyToJob_UnknownJobIsNotFound(t *testing.T) {

	user := candidate()
	ts := newTestServer(t)
	token := ts.loginAs(t, user)
	ts.jobs.On("AddApplicant", mock.Anything, uint(42), user).
		Return(apperrors.NotFoundf("job 42"))

	req := httptest.NewRequest(http.MethodPost, "/api/jobs/42/apply", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp := ts.do(req)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func Test_AnalyzeJSON_ReturnsResult(t *testing.T) {

	ts := newTestServer(t)
	ts.analysis.On("Analyze", mock.Anything, mock.MatchedBy(func(req services.AnalysisRequest) bool {
		return req.ResumeText == "python developer" && req.JobText == "python and go" &&
			req.Strategy == "exact"
	})).Return(&analyzer.AnalysisResult{
		MatchedSkills: []string{"python"}, MissingSkills: []string{"go"}, MatchPercentage: 50,
	}, nil)

	resp := ts.do(jsonRequest(http.MethodPost, "/api/skill-gap/analyze-json", gin.H{
		"resume_text": "python developer", "job_text": "python and go", "strategy": "exact",
	}))

	assert.Equal(t, http.StatusOK, resp.Code)

	var result analyzer.AnalysisResult
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	assert.Equal(t, []string{"go"}, result.MissingSkills)
}

func Test_AnalyzeJSON_ValidationErrorIsBadRequest(t *testing.T) {

	ts := newTestServer(t)
	ts.analysis.On("Analyze", mock.Anything, mock.Anything).
		Return(nil, apperrors.Validationf("either resume_text or resume_id must be provided"))

	resp := ts.do(jsonRequest(http.MethodPost, "/api/skill-gap/analyze-json", gin.H{
		"job_text": "python and go",
	}))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func Test_AnalyzeJSON_UpstreamDownIsServiceUnavailable(t *testing.T) {

	ts := newTestServer(t)
	ts.analysis.On("Analyze", mock.Anything, mock.Anything).
		Return(nil, apperrors.Upstreamf("connection refused"))

	resp := ts.do(jsonRequest(http.MethodPost, "/api/skill-gap/analyze-json", gin.H{
		"resume_text": "a", "job_text": "b",
	}))

	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

func multipartBody(t *testing.T, fields map[string]string, fileField, fileName string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		assert.NoError(t, writer.WriteField(key, value))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		assert.NoError(t, err)
		_, err = io.Copy(part, bytes.NewReader(fileContent))
		assert.NoError(t, err)
	}
	assert.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func Test_AnalyzeUpload_ParsesFileAndAnalyzes(t *testing.T) {

	ts := newTestServer(t)
	ts.extract.On("Parse", mock.Anything, mock.Anything).
		Return(&parser.Parsed{Text: "python developer", Skills: []string{"python"}}, nil)
	ts.analysis.On("Analyze", mock.Anything, mock.MatchedBy(func(req services.AnalysisRequest) bool {
		return req.ResumeText == "python developer" && req.JobText == "needs python"
	})).Return(&analyzer.AnalysisResult{MatchPercentage: 100}, nil)

	body, contentType := multipartBody(t, map[string]string{"job_text": "needs python"},
		"file", "resume.txt", []byte("python developer"))

	req := httptest.NewRequest(http.MethodPost, "/api/skill-gap/analyze", body)
	req.Header.Set("Content-Type", contentType)

	resp := ts.do(req)
	assert.Equal(t, http.StatusOK, resp.Code)
	ts.analysis.AssertExpectations(t)
}

func Test_AnalyzeUpload_MissingJobTextIsBadRequest(t *testing.T) {

	ts := newTestServer(t)

	body, contentType := multipartBody(t, nil, "file", "resume.txt", []byte("text"))
	req := httptest.NewRequest(http.MethodPost, "/api/skill-gap/analyze", body)
	req.Header.Set("Content-Type", contentType)

	resp := ts.do(req)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func Test_UploadResume_UnsupportedExtensionIsBadRequest(t *testing.T) {

	ts := newTestServer(t)
	token := ts.loginAs(t, candidate())

	body, contentType := multipartBody(t, nil, "file", "resume.exe", []byte("binary"))
	req := httptest.NewRequest(http.MethodPost, "/api/resumes/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	resp := ts.do(req)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func Test_UploadResume_StoresParsedResume(t *testing.T) {

	user := candidate()
	ts := newTestServer(t)
	token := ts.loginAs(t, user)
	ts.resumes.On("Intake", mock.Anything, user.ID, mock.Anything).
		Return(&entities.Resume{ID: 1, UserID: user.ID, Skills: "python", Text: "python developer"}, nil)

	body, contentType := multipartBody(t, nil, "file", "resume.txt", []byte("python developer"))
	req := httptest.NewRequest(http.MethodPost, "/api/resumes/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	resp := ts.do(req)
	assert.Equal(t, http.StatusCreated, resp.Code)
	ts.resumes.AssertExpectations(t)
}

func Test_UploadResume_ParsingFailureIsUnprocessable(t *testing.T) {

	user := candidate()
	ts := newTestServer(t)
	token := ts.loginAs(t, user)
	ts.resumes.On("Intake", mock.Anything, user.ID, mock.Anything).
		Return(nil, apperrors.ParsingFailedf("document has no extractable text"))

	body, contentType := multipartBody(t, nil, "file", "resume.pdf", []byte("%PDF-"))
	req := httptest.NewRequest(http.MethodPost, "/api/resumes/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	resp := ts.do(req)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func Test_ExtractSkills_RelaysToAnalyzer(t *testing.T) {

	ts := newTestServer(t)
	ts.analysis.On("ExtractSkills", mock.Anything, "python and docker", "").
		Return(&analyzer.Extraction{TotalSkills: 2, Skills: []string{"python", "docker"}}, nil)

	body, contentType := multipartBody(t, map[string]string{"text": "python and docker"}, "", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/skills/extract", body)
	req.Header.Set("Content-Type", contentType)

	resp := ts.do(req)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func Test_Health_ReportsUnreachableAnalyzer(t *testing.T) {

	ts := newTestServer(t)
	ts.health.On("GetHealth", mock.Anything).Return(nil, errors.New("connection refused"))

	resp := ts.do(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "unreachable")
}

func Test_ListSkills_GroupsByCategory(t *testing.T) {

	ts := newTestServer(t)

	resp := ts.do(httptest.NewRequest(http.MethodGet, "/api/skills/list", nil))
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "total_skills")
}
