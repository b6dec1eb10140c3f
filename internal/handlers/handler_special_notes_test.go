package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/denimfab/denim_factory_app/internal/apperrors"
	"github.com/denimfab/denim_factory_app/internal/core/domain"
	portssvc "github.com/denimfab/denim_factory_app/internal/core/ports/services"
	"github.com/denimfab/denim_factory_app/internal/dto"
	"github.com/denimfab/denim_factory_app/internal/handlers"
	"github.com/denimfab/denim_factory_app/internal/platform/config"
	"github.com/denimfab/denim_factory_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SpecialNoteService ---
type MockSpecialNoteService struct {
	mock.Mock
}

func (m *MockSpecialNoteService) AddNote(ctx context.Context, req dto.CreateSpecialNoteRequest, authorID int64) (*domain.SpecialNote, error) {
	args := m.Called(ctx, req, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpecialNote), args.Error(1)
}

func (m *MockSpecialNoteService) ListActiveNotes(ctx context.Context) ([]domain.SpecialNote, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SpecialNote), args.Error(1)
}

func (m *MockSpecialNoteService) DeactivateNote(ctx context.Context, noteID int64) error {
	args := m.Called(ctx, noteID)
	return args.Error(0)
}

// --- Test Suite ---

type SpecialNoteHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockNoteService *MockSpecialNoteService
	cfg             *config.Config
	adminToken      string
	dataEntryToken  string
}

func (suite *SpecialNoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "dfa-test",
		IsProduction:      true,
	}

	suite.mockNoteService = new(MockSpecialNoteService)
	services := &portssvc.ServiceContainer{SpecialNote: suite.mockNoteService}

	handlers.RegisterRoutes(suite.router, suite.cfg, services)

	suite.adminToken = suite.token(1, "boss", domain.RoleAdmin)
	suite.dataEntryToken = suite.token(2, "operator1", domain.RoleDataEntry)
}

func (suite *SpecialNoteHandlerTestSuite) token(userID int64, username string, role domain.Role) string {
	user := &domain.User{UserID: userID, Username: username, Role: role}
	token, err := utils.GenerateJWT(user, suite.cfg.JWTSecret, suite.cfg.JWTExpiryDuration, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)
	return token
}

func (suite *SpecialNoteHandlerTestSuite) doRequest(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *SpecialNoteHandlerTestSuite) TestAddNote_Success() {
	created := &domain.SpecialNote{
		ID:        1,
		NoteDate:  time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		Content:   "Line 2 closed for maintenance",
		EnteredBy: 1,
		IsActive:  true,
	}

	suite.mockNoteService.On("AddNote", mock.Anything, dto.CreateSpecialNoteRequest{
		NoteDate: "2024-05-10",
		Content:  "Line 2 closed for maintenance",
	}, int64(1)).Return(created, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/special-notes/", suite.adminToken, gin.H{
		"noteDate": "2024-05-10",
		"content":  "Line 2 closed for maintenance",
	})

	suite.Equal(http.StatusCreated, w.Code)

	var resp domain.SpecialNote
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(1), resp.ID)
	suite.True(resp.IsActive)
	suite.mockNoteService.AssertExpectations(suite.T())
}

func (suite *SpecialNoteHandlerTestSuite) TestAddNote_DataEntryForbidden() {
	w := suite.doRequest(http.MethodPost, "/api/special-notes/", suite.dataEntryToken, gin.H{
		"content": "not allowed",
	})

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockNoteService.AssertNotCalled(suite.T(), "AddNote")
}

func (suite *SpecialNoteHandlerTestSuite) TestAddNote_MissingContent() {
	w := suite.doRequest(http.MethodPost, "/api/special-notes/", suite.adminToken, gin.H{
		"noteDate": "2024-05-10",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockNoteService.AssertNotCalled(suite.T(), "AddNote")
}

func (suite *SpecialNoteHandlerTestSuite) TestListActive_Success() {
	notes := []domain.SpecialNote{
		{ID: 2, Content: "newer", IsActive: true},
		{ID: 1, Content: "older", IsActive: true},
	}
	suite.mockNoteService.On("ListActiveNotes", mock.Anything).Return(notes, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/special-notes/", suite.adminToken, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp []domain.SpecialNote
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.Equal(int64(2), resp[0].ID)
	suite.mockNoteService.AssertExpectations(suite.T())
}

func (suite *SpecialNoteHandlerTestSuite) TestDeactivate_Success() {
	suite.mockNoteService.On("DeactivateNote", mock.Anything, int64(4)).Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/special-notes/4", suite.adminToken, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"message": "Special note deactivated successfully."}`, w.Body.String())
	suite.mockNoteService.AssertExpectations(suite.T())
}

func (suite *SpecialNoteHandlerTestSuite) TestDeactivate_Twice() {
	// Soft delete matches on id alone, so repeating it on an inactive note
	// still succeeds; only an id that never existed is a 404.
	suite.mockNoteService.On("DeactivateNote", mock.Anything, int64(4)).Return(nil).Twice()

	first := suite.doRequest(http.MethodDelete, "/api/special-notes/4", suite.adminToken, nil)
	second := suite.doRequest(http.MethodDelete, "/api/special-notes/4", suite.adminToken, nil)

	suite.Equal(http.StatusOK, first.Code)
	suite.Equal(http.StatusOK, second.Code)
	suite.mockNoteService.AssertExpectations(suite.T())
}

func (suite *SpecialNoteHandlerTestSuite) TestDeactivate_NotFound() {
	notFound := fmt.Errorf("%w: note not found", apperrors.ErrNotFound)
	suite.mockNoteService.On("DeactivateNote", mock.Anything, int64(99)).Return(notFound).Once()

	w := suite.doRequest(http.MethodDelete, "/api/special-notes/99", suite.adminToken, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.JSONEq(`{"message": "Note not found."}`, w.Body.String())
	suite.mockNoteService.AssertExpectations(suite.T())
}

func TestSpecialNoteHandler(t *testing.T) {
	suite.Run(t, new(SpecialNoteHandlerTestSuite))
}
