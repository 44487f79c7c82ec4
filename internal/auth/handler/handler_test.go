package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"lawpoint/internal/auth/models"
	"lawpoint/internal/auth/password"
	authservice "lawpoint/internal/auth/service"
	"lawpoint/internal/auth/store/user"
	jwttoken "lawpoint/internal/jwt_token"
	"lawpoint/internal/platform/metrics"
)

// The handler suite drives the real stack (memory store, real hasher, real
// token service) through the router, so it covers the wire contract end to
// end minus Mongo.
type AuthHandlerSuite struct {
	suite.Suite
	router chi.Router
	tokens *jwttoken.Service
}

func (s *AuthHandlerSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.tokens = jwttoken.NewService("test-secret", 7*24*time.Hour)

	svc := authservice.New(
		user.NewMemory(),
		password.NewHasher(bcrypt.MinCost),
		s.tokens,
		logger,
		metrics.NewForTesting(),
	)

	s.router = chi.NewRouter()
	New(svc, logger, jwttoken.NewServiceAdapter(s.tokens)).Register(s.router)
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerSuite))
}

func (s *AuthHandlerSuite) do(method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *AuthHandlerSuite) signup(email, pw, name string) models.AuthResult {
	rec := s.do(http.MethodPost, "/api/auth/signup",
		`{"email":"`+email+`","password":"`+pw+`","name":"`+name+`"}`, "")
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var result models.AuthResult
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &result))
	return result
}

func (s *AuthHandlerSuite) TestSignupCreatesAccount() {
	rec := s.do(http.MethodPost, "/api/auth/signup",
		`{"email":"A@x.com","password":"pw123456","name":"Alice"}`, "")

	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var result models.AuthResult
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &result))
	s.NotEmpty(result.Token)
	s.NotEmpty(result.User.ID)
	s.Equal("a@x.com", result.User.Email)
	s.Equal("Alice", result.User.Name)

	// The credential digest must never appear in a response, under any name.
	raw := strings.ToLower(rec.Body.String())
	s.NotContains(raw, "password")
	s.NotContains(raw, "hash")
}

func (s *AuthHandlerSuite) TestSignupRejectsDuplicateEmail() {
	s.signup("a@x.com", "pw123456", "Alice")

	rec := s.do(http.MethodPost, "/api/auth/signup",
		`{"email":"A@X.com","password":"different","name":"Impostor"}`, "")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "conflict")
}

func (s *AuthHandlerSuite) TestSignupRejectsBadBody() {
	rec := s.do(http.MethodPost, "/api/auth/signup", "{bad-json", "")
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/api/auth/signup", `{"email":"a@x.com"}`, "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *AuthHandlerSuite) TestLogin() {
	s.signup("a@x.com", "pw123456", "Alice")

	rec := s.do(http.MethodPost, "/api/auth/login", `{"email":"a@x.com","password":"pw123456"}`, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var result models.AuthResult
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &result))
	s.NotEmpty(result.Token)

	rec = s.do(http.MethodPost, "/api/auth/login", `{"email":"a@x.com","password":"wrong"}`, "")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "invalid_credentials")

	rec = s.do(http.MethodPost, "/api/auth/login", `{"email":"nobody@x.com","password":"pw123456"}`, "")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "invalid_credentials")
}

func (s *AuthHandlerSuite) TestMeRequiresValidToken() {
	signedUp := s.signup("a@x.com", "pw123456", "Alice")

	rec := s.do(http.MethodGet, "/api/auth/me", "", "")
	s.Equal(http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodGet, "/api/auth/me", "", "garbage-token")
	s.Equal(http.StatusUnauthorized, rec.Code)

	expired, err := jwttoken.NewService("test-secret", -time.Minute).Issue(signedUp.User.ID, signedUp.User.Email)
	s.Require().NoError(err)
	rec = s.do(http.MethodGet, "/api/auth/me", "", expired)
	s.Equal(http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodGet, "/api/auth/me", "", signedUp.Token)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var current models.PublicUser
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &current))
	s.Equal(signedUp.User.ID, current.ID)
	s.Equal("a@x.com", current.Email)
}

func (s *AuthHandlerSuite) TestMeUnknownSubjectIs404() {
	token, err := s.tokens.Issue("no-such-user", "ghost@x.com")
	s.Require().NoError(err)

	rec := s.do(http.MethodGet, "/api/auth/me", "", token)
	s.Equal(http.StatusNotFound, rec.Code)
}
