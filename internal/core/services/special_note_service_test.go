package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/denimfab/denim_factory_app/internal/apperrors"
	"github.com/denimfab/denim_factory_app/internal/core/domain"
	"github.com/denimfab/denim_factory_app/internal/core/services"
	"github.com/denimfab/denim_factory_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SpecialNoteRepository ---
type MockSpecialNoteRepository struct {
	mock.Mock
}

func (m *MockSpecialNoteRepository) InsertNote(ctx context.Context, note domain.SpecialNote) (*domain.SpecialNote, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpecialNote), args.Error(1)
}

func (m *MockSpecialNoteRepository) FindActiveNotes(ctx context.Context, limit int) ([]domain.SpecialNote, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SpecialNote), args.Error(1)
}

func (m *MockSpecialNoteRepository) DeactivateNote(ctx context.Context, noteID int64) error {
	args := m.Called(ctx, noteID)
	return args.Error(0)
}

// --- Test Suite ---

type SpecialNoteServiceTestSuite struct {
	suite.Suite
	mockNoteRepo *MockSpecialNoteRepository
	service      *services.SpecialNoteService
}

func (suite *SpecialNoteServiceTestSuite) SetupTest() {
	suite.mockNoteRepo = new(MockSpecialNoteRepository)
	suite.service = services.NewSpecialNoteService(suite.mockNoteRepo)
}

func (suite *SpecialNoteServiceTestSuite) TestAddNote_ExplicitDate() {
	ctx := context.Background()
	req := dto.CreateSpecialNoteRequest{NoteDate: "2024-05-10", Content: "Line 2 closed for maintenance"}
	wantDate := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	suite.mockNoteRepo.On("InsertNote", ctx, mock.MatchedBy(func(note domain.SpecialNote) bool {
		return note.NoteDate.Equal(wantDate) &&
			note.Content == "Line 2 closed for maintenance" &&
			note.EnteredBy == int64(5)
	})).Return(&domain.SpecialNote{ID: 1, NoteDate: wantDate, Content: req.Content, EnteredBy: 5, IsActive: true}, nil).Once()

	created, err := suite.service.AddNote(ctx, req, 5)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal(int64(1), created.ID)
	suite.True(created.IsActive)
	suite.mockNoteRepo.AssertExpectations(suite.T())
}

func (suite *SpecialNoteServiceTestSuite) TestAddNote_DefaultsToToday() {
	ctx := context.Background()
	req := dto.CreateSpecialNoteRequest{Content: "Shipment audit at 3pm"}

	suite.mockNoteRepo.On("InsertNote", ctx, mock.MatchedBy(func(note domain.SpecialNote) bool {
		h, m, s := note.NoteDate.Clock()
		return h == 0 && m == 0 && s == 0 && time.Since(note.NoteDate) < 24*time.Hour
	})).Return(&domain.SpecialNote{ID: 2, Content: req.Content, IsActive: true}, nil).Once()

	created, err := suite.service.AddNote(ctx, req, 5)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.mockNoteRepo.AssertExpectations(suite.T())
}

func (suite *SpecialNoteServiceTestSuite) TestAddNote_BlankContent() {
	ctx := context.Background()
	req := dto.CreateSpecialNoteRequest{Content: "   "}

	created, err := suite.service.AddNote(ctx, req, 5)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockNoteRepo.AssertNotCalled(suite.T(), "InsertNote")
}

func (suite *SpecialNoteServiceTestSuite) TestAddNote_MalformedDate() {
	ctx := context.Background()
	req := dto.CreateSpecialNoteRequest{NoteDate: "10/05/2024", Content: "audit"}

	created, err := suite.service.AddNote(ctx, req, 5)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockNoteRepo.AssertNotCalled(suite.T(), "InsertNote")
}

func (suite *SpecialNoteServiceTestSuite) TestListActiveNotes_UsesLimit() {
	ctx := context.Background()
	notes := []domain.SpecialNote{{ID: 2, Content: "b"}, {ID: 1, Content: "a"}}

	suite.mockNoteRepo.On("FindActiveNotes", ctx, 20).Return(notes, nil).Once()

	result, err := suite.service.ListActiveNotes(ctx)

	suite.Require().NoError(err)
	suite.Equal(notes, result)
	suite.mockNoteRepo.AssertExpectations(suite.T())
}

func (suite *SpecialNoteServiceTestSuite) TestDeactivateNote_NotFound() {
	ctx := context.Background()

	suite.mockNoteRepo.On("DeactivateNote", ctx, int64(99)).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeactivateNote(ctx, 99)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockNoteRepo.AssertExpectations(suite.T())
}

func TestSpecialNoteService(t *testing.T) {
	suite.Run(t, new(SpecialNoteServiceTestSuite))
}
