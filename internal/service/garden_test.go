package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"garden-planner-backend/internal/cascade"
	"garden-planner-backend/internal/database/models"
	apperrors "garden-planner-backend/internal/errors"
	"garden-planner-backend/internal/mocks"
	"garden-planner-backend/internal/service"
	"garden-planner-backend/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// GardenServiceTestSuite defines the test suite for GardenService
type GardenServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRepo      *mocks.MockGardenRepositoryInterface
	mockBedRepo   *mocks.MockRaisedBedRepositoryInterface
	mockPlantRepo *mocks.MockPlantRepositoryInterface
	gardenService *service.GardenService
	ctx           context.Context
}

// SetupTest sets up the test suite
func (suite *GardenServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockGardenRepositoryInterface(suite.ctrl)
	suite.mockBedRepo = mocks.NewMockRaisedBedRepositoryInterface(suite.ctrl)
	suite.mockPlantRepo = mocks.NewMockPlantRepositoryInterface(suite.ctrl)
	registry := cascade.NewDefaultRegistry(suite.mockPlantRepo, suite.mockBedRepo, nil)
	suite.gardenService = service.NewGardenService(suite.mockRepo, suite.mockBedRepo, suite.mockPlantRepo, registry, validation.New(), 2)
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *GardenServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func newGarden(width, height float64) *models.Garden {
	return &models.Garden{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Backyard", Width: width, Height: height}
}

func (suite *GardenServiceTestSuite) TestCreate() {
	req := &service.CreateGardenRequest{Name: "  Backyard  ", Width: 3, Height: 2.5}

	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(g *models.Garden) error {
		suite.Equal("Backyard", g.Name)
		g.ID = uuid.New()
		return nil
	})

	resp, err := suite.gardenService.Create(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal("Backyard", resp.Name)
	suite.Equal(3.0, resp.Width)
	suite.Equal(2.5, resp.Height)
	suite.NotEqual(uuid.Nil, resp.ID)
}

func (suite *GardenServiceTestSuite) TestCreateValidation() {
	testCases := []struct {
		name     string
		request  *service.CreateGardenRequest
		messages []string
	}{
		{
			name:     "blank name",
			request:  &service.CreateGardenRequest{Name: "   ", Width: 3, Height: 3},
			messages: []string{"name: is required"},
		},
		{
			name:     "too small",
			request:  &service.CreateGardenRequest{Name: "Tiny", Width: 0.4, Height: 0},
			messages: []string{"width: must be at least 0.5", "height: must be at least 0.5"},
		},
		{
			name:     "too large",
			request:  &service.CreateGardenRequest{Name: "Farm", Width: 101, Height: 3},
			messages: []string{"width: cannot exceed 100"},
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.gardenService.Create(suite.ctx, tc.request)

			suite.Require().Error(err)
			verrs, ok := apperrors.AsValidationErrors(err)
			suite.Require().True(ok)
			suite.Equal(tc.messages, verrs.Messages())
		})
	}
}

func (suite *GardenServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.gardenService.GetByID(suite.ctx, id)

	suite.ErrorIs(err, apperrors.ErrGardenNotFound)
}

func (suite *GardenServiceTestSuite) TestList() {
	a := newGarden(3, 3)
	b := newGarden(5, 5)
	suite.mockRepo.EXPECT().GetAll().Return([]models.Garden{*a, *b}, nil)

	resp, err := suite.gardenService.List(suite.ctx)

	suite.Require().NoError(err)
	suite.Require().Len(resp, 2)
	suite.Equal(a.ID, resp[0].ID)
	suite.Equal(b.ID, resp[1].ID)
}

func (suite *GardenServiceTestSuite) TestGetLayout() {
	garden := newGarden(3, 2.5)
	bed := models.RaisedBed{BaseModel: models.BaseModel{ID: uuid.New()}, GardenID: garden.ID, Rect: models.Rect{Width: 1.2, Height: 0.6}}
	plant := models.Plant{BaseModel: models.BaseModel{ID: uuid.New()}, GardenID: garden.ID, RaisedBedID: &bed.ID}

	suite.mockRepo.EXPECT().GetByID(garden.ID).Return(garden, nil)
	suite.mockBedRepo.EXPECT().GetByGardenID(garden.ID).Return([]models.RaisedBed{bed}, nil)
	suite.mockPlantRepo.EXPECT().GetByGardenID(garden.ID).Return([]models.Plant{plant}, nil)

	layout, err := suite.gardenService.GetLayout(suite.ctx, garden.ID)

	suite.Require().NoError(err)
	suite.Equal(garden.ID, layout.Garden.ID)
	suite.Require().Len(layout.RaisedBeds, 1)
	suite.Equal(1.2, layout.RaisedBeds[0].Width)
	suite.Require().Len(layout.Plants, 1)
	suite.Equal(&bed.ID, layout.Plants[0].RaisedBedID)
}

func (suite *GardenServiceTestSuite) TestUpdate() {
	garden := newGarden(3, 3)
	name := "Front yard"
	width := 4.0

	suite.mockRepo.EXPECT().GetByID(garden.ID).Return(garden, nil)
	suite.mockRepo.EXPECT().Update(garden.ID, map[string]interface{}{"name": "Front yard", "width": 4.0}).Return(nil)
	updated := *garden
	updated.Name, updated.Width = name, width
	suite.mockRepo.EXPECT().GetByID(garden.ID).Return(&updated, nil)

	resp, err := suite.gardenService.Update(suite.ctx, garden.ID, &service.UpdateGardenRequest{Name: &name, Width: &width})

	suite.Require().NoError(err)
	suite.Equal("Front yard", resp.Name)
	suite.Equal(4.0, resp.Width)
}

func (suite *GardenServiceTestSuite) TestUpdateEmpty() {
	_, err := suite.gardenService.Update(suite.ctx, uuid.New(), &service.UpdateGardenRequest{})
	suite.ErrorIs(err, apperrors.ErrEmptyUpdate)
}

func (suite *GardenServiceTestSuite) TestUpdateBlankName() {
	blank := "  "
	_, err := suite.gardenService.Update(suite.ctx, uuid.New(), &service.UpdateGardenRequest{Name: &blank})
	suite.True(apperrors.IsValidation(err))
}

func (suite *GardenServiceTestSuite) TestDeleteCascades() {
	garden := newGarden(3, 2.5)
	bed := models.RaisedBed{BaseModel: models.BaseModel{ID: uuid.New()}, GardenID: garden.ID}
	plant := models.Plant{BaseModel: models.BaseModel{ID: uuid.New()}, GardenID: garden.ID, RaisedBedID: &bed.ID}

	gomock.InOrder(
		suite.mockRepo.EXPECT().GetByID(garden.ID).Return(garden, nil),
		suite.mockRepo.EXPECT().Delete(garden.ID).Return(nil),
		suite.mockPlantRepo.EXPECT().GetByGardenID(garden.ID).Return([]models.Plant{plant}, nil),
		suite.mockPlantRepo.EXPECT().Delete(plant.ID).Return(nil),
		suite.mockBedRepo.EXPECT().GetByGardenID(garden.ID).Return([]models.RaisedBed{bed}, nil),
		suite.mockBedRepo.EXPECT().Delete(bed.ID).Return(nil),
	)

	suite.NoError(suite.gardenService.Delete(suite.ctx, garden.ID))
}

func (suite *GardenServiceTestSuite) TestDeleteSurfacesCascadeFailure() {
	garden := newGarden(3, 2.5)
	plant := models.Plant{BaseModel: models.BaseModel{ID: uuid.New()}, GardenID: garden.ID}

	suite.mockRepo.EXPECT().GetByID(garden.ID).Return(garden, nil)
	suite.mockRepo.EXPECT().Delete(garden.ID).Return(nil)
	suite.mockPlantRepo.EXPECT().GetByGardenID(garden.ID).Return([]models.Plant{plant}, nil)
	suite.mockPlantRepo.EXPECT().Delete(plant.ID).Return(errors.New("connection lost"))

	err := suite.gardenService.Delete(suite.ctx, garden.ID)

	var cascadeErr *cascade.Error
	suite.Require().ErrorAs(err, &cascadeErr)
	suite.Equal(garden.ID, cascadeErr.ID)
}

func (suite *GardenServiceTestSuite) TestDeleteNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.gardenService.Delete(suite.ctx, id), apperrors.ErrGardenNotFound)
}

func (suite *GardenServiceTestSuite) TestBulkDeleteReportsEachID() {
	ok1 := newGarden(3, 3)
	ok2 := newGarden(3, 3)
	missing := uuid.New()

	var mu sync.Mutex
	deleted := map[uuid.UUID]bool{}
	suite.mockRepo.EXPECT().GetByID(gomock.Any()).DoAndReturn(func(id uuid.UUID) (*models.Garden, error) {
		switch id {
		case ok1.ID:
			return ok1, nil
		case ok2.ID:
			return ok2, nil
		}
		return nil, gorm.ErrRecordNotFound
	}).Times(3)
	suite.mockRepo.EXPECT().Delete(gomock.Any()).DoAndReturn(func(id uuid.UUID) error {
		mu.Lock()
		defer mu.Unlock()
		deleted[id] = true
		return nil
	}).Times(2)
	suite.mockPlantRepo.EXPECT().GetByGardenID(gomock.Any()).Return(nil, nil).Times(2)
	suite.mockBedRepo.EXPECT().GetByGardenID(gomock.Any()).Return(nil, nil).Times(2)

	resp, err := suite.gardenService.BulkDelete(suite.ctx, &service.BulkDeleteGardensRequest{
		IDs: []uuid.UUID{ok1.ID, missing, ok2.ID, ok1.ID},
	})

	suite.Require().NoError(err)
	suite.Equal(2, resp.Deleted)
	suite.Equal(1, resp.Failed)
	suite.Require().Len(resp.Results, 3)
	suite.Equal(ok1.ID, resp.Results[0].ID)
	suite.True(resp.Results[0].Deleted)
	suite.Equal(missing, resp.Results[1].ID)
	suite.False(resp.Results[1].Deleted)
	suite.Equal("garden not found", resp.Results[1].Error)
	suite.True(resp.Results[2].Deleted)
	suite.True(deleted[ok1.ID])
	suite.True(deleted[ok2.ID])
}

func (suite *GardenServiceTestSuite) TestBulkDeleteRequiresIDs() {
	_, err := suite.gardenService.BulkDelete(suite.ctx, &service.BulkDeleteGardensRequest{})
	suite.True(apperrors.IsValidation(err))
}

// TestGardenServiceTestSuite runs the test suite
func TestGardenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GardenServiceTestSuite))
}
