package service_test

import (
	"context"
	"testing"
	"time"

	"garden-planner-backend/internal/cascade"
	"garden-planner-backend/internal/database/models"
	apperrors "garden-planner-backend/internal/errors"
	"garden-planner-backend/internal/metrics"
	"garden-planner-backend/internal/mocks"
	"garden-planner-backend/internal/optimistic"
	"garden-planner-backend/internal/placement"
	"garden-planner-backend/internal/service"
	"garden-planner-backend/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// PlantServiceTestSuite defines the test suite for PlantService
type PlantServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockRepo          *mocks.MockPlantRepositoryInterface
	mockGardenRepo    *mocks.MockGardenRepositoryInterface
	mockBedRepo       *mocks.MockRaisedBedRepositoryInterface
	mockPlantTypeRepo *mocks.MockPlantTypeRepositoryInterface
	overlay           *service.PlacementOverlay
	plantService      *service.PlantService
	garden            *models.Garden
	bed               models.RaisedBed
	tomato            *models.PlantType
	ctx               context.Context
}

// SetupTest sets up the test suite
func (suite *PlantServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockPlantRepositoryInterface(suite.ctrl)
	suite.mockGardenRepo = mocks.NewMockGardenRepositoryInterface(suite.ctrl)
	suite.mockBedRepo = mocks.NewMockRaisedBedRepositoryInterface(suite.ctrl)
	suite.mockPlantTypeRepo = mocks.NewMockPlantTypeRepositoryInterface(suite.ctrl)
	m := metrics.New(nil)
	suite.overlay = service.NewPlacementOverlay(time.Minute, m)
	registry := cascade.NewDefaultRegistry(suite.mockRepo, suite.mockBedRepo, nil)
	suite.plantService = service.NewPlantService(suite.mockRepo, suite.mockGardenRepo, suite.mockBedRepo, suite.mockPlantTypeRepo, registry, suite.overlay, m, validation.New())

	suite.garden = newGarden(3, 2.5)
	suite.bed = models.RaisedBed{
		BaseModel: models.BaseModel{ID: uuid.New()},
		GardenID:  suite.garden.ID,
		Name:      "North",
		Rect:      models.Rect{X: 0, Y: 0, Width: 1.2, Height: 2.4},
		Material:  models.MaterialWood,
	}
	suite.tomato = &models.PlantType{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Tomato", Category: "vegetable", Spacing: 60, Color: "#ff6b6b"}
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *PlantServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PlantServiceTestSuite) expectPlacementLookups() {
	suite.mockGardenRepo.EXPECT().GetByID(suite.garden.ID).Return(suite.garden, nil)
	suite.mockPlantTypeRepo.EXPECT().GetByName("Tomato").Return(suite.tomato, nil)
	suite.mockBedRepo.EXPECT().GetByGardenID(suite.garden.ID).Return([]models.RaisedBed{suite.bed}, nil)
}

func (suite *PlantServiceTestSuite) TestPlaceInBed() {
	suite.expectPlacementLookups()
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Plant) error {
		p.ID = uuid.New()
		return nil
	})

	resp, err := suite.plantService.Place(suite.ctx, suite.garden.ID, &service.PlacePlantRequest{PlantTypeName: " Tomato ", X: 0.1, Y: 0.1}, "plant-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(resp.RaisedBedID)
	suite.Equal(suite.bed.ID, *resp.RaisedBedID)
	suite.Equal("Tomato", resp.Name)
	suite.Equal("Tomato", resp.Variety)
	suite.Equal("#ff6b6b", resp.Color)
	suite.Equal(0.0, resp.X)
	suite.Equal(0.6, resp.Width)
	suite.Equal(models.PlantStatusPlanned, resp.Status)

	entry, ok := suite.overlay.Get("plant-1")
	suite.Require().True(ok)
	suite.Equal(optimistic.StateConfirmed, entry.State)
	suite.Equal(resp.ID, entry.RecordID)
}

func (suite *PlantServiceTestSuite) TestPlaceInSoil() {
	suite.expectPlacementLookups()
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.plantService.Place(suite.ctx, suite.garden.ID, &service.PlacePlantRequest{PlantTypeName: "Tomato", X: 1.5, Y: 0}, "")

	suite.Require().NoError(err)
	suite.Nil(resp.RaisedBedID)
	suite.Equal(1.5, resp.X)
}

func (suite *PlantServiceTestSuite) TestPlaceDoesNotFitInBed() {
	suite.expectPlacementLookups()

	_, err := suite.plantService.Place(suite.ctx, suite.garden.ID, &service.PlacePlantRequest{PlantTypeName: "Tomato", X: 0.75, Y: 0}, "plant-2")

	verrs, ok := apperrors.AsValidationErrors(err)
	suite.Require().True(ok)
	suite.Equal(placement.ReasonPlantDoesNotFitInBed, verrs.Reason)

	entry, ok := suite.overlay.Get("plant-2")
	suite.Require().True(ok)
	suite.Equal(optimistic.StateFailed, entry.State)
	suite.Equal(placement.ReasonPlantDoesNotFitInBed, entry.Reason)
	suite.Equal([]string{`raised_bed_id: plant does not fit entirely within bed "North"`}, entry.Details)
}

func (suite *PlantServiceTestSuite) TestPlaceOutOfBounds() {
	suite.expectPlacementLookups()

	_, err := suite.plantService.Place(suite.ctx, suite.garden.ID, &service.PlacePlantRequest{PlantTypeName: "Tomato", X: 2.9, Y: 2.4}, "")

	verrs, ok := apperrors.AsValidationErrors(err)
	suite.Require().True(ok)
	suite.Equal(placement.ReasonPlantOutOfBounds, verrs.Reason)
	suite.Len(verrs.Errors, 2)
}

func (suite *PlantServiceTestSuite) TestPlaceUnknownPlantType() {
	suite.mockGardenRepo.EXPECT().GetByID(suite.garden.ID).Return(suite.garden, nil)
	suite.mockPlantTypeRepo.EXPECT().GetByName("Kohlrabi").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.plantService.Place(suite.ctx, suite.garden.ID, &service.PlacePlantRequest{PlantTypeName: "Kohlrabi"}, "")

	suite.ErrorIs(err, apperrors.ErrPlantTypeNotFound)
}

func (suite *PlantServiceTestSuite) TestPlaceRequiresPlantType() {
	_, err := suite.plantService.Place(suite.ctx, suite.garden.ID, &service.PlacePlantRequest{PlantTypeName: "  "}, "")

	verrs, ok := apperrors.AsValidationErrors(err)
	suite.Require().True(ok)
	suite.Equal([]string{"plant_type_name: is required"}, verrs.Messages())
}

func (suite *PlantServiceTestSuite) TestMoveClampsAndKeepsBed() {
	plant := &models.Plant{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		GardenID:    suite.garden.ID,
		RaisedBedID: &suite.bed.ID,
		Rect:        models.Rect{X: 0, Y: 0, Width: 0.6, Height: 0.6},
	}
	suite.mockRepo.EXPECT().GetByID(plant.ID).Return(plant, nil)
	suite.mockGardenRepo.EXPECT().GetByID(suite.garden.ID).Return(suite.garden, nil)
	suite.mockRepo.EXPECT().Update(plant.ID, map[string]interface{}{"x": 2.25, "y": 1.75}).Return(nil)

	resp, err := suite.plantService.Move(suite.ctx, plant.ID, &service.MovePlantRequest{X: 10, Y: 10})

	suite.Require().NoError(err)
	suite.Equal(2.25, resp.X)
	suite.Equal(1.75, resp.Y)
	suite.Require().NotNil(resp.RaisedBedID)
	suite.Equal(suite.bed.ID, *resp.RaisedBedID)
}

func (suite *PlantServiceTestSuite) TestMoveNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.plantService.Move(suite.ctx, id, &service.MovePlantRequest{})
	suite.ErrorIs(err, apperrors.ErrPlantNotFound)
}

func (suite *PlantServiceTestSuite) TestUpdate() {
	plant := &models.Plant{BaseModel: models.BaseModel{ID: uuid.New()}, GardenID: suite.garden.ID, Status: models.PlantStatusPlanned}
	status := models.PlantStatusGrowing
	notes := "staked"

	suite.mockRepo.EXPECT().GetByID(plant.ID).Return(plant, nil)
	suite.mockRepo.EXPECT().Update(plant.ID, map[string]interface{}{"status": models.PlantStatusGrowing, "notes": "staked"}).Return(nil)
	updated := *plant
	updated.Status, updated.Notes = status, notes
	suite.mockRepo.EXPECT().GetByID(plant.ID).Return(&updated, nil)

	resp, err := suite.plantService.Update(suite.ctx, plant.ID, &service.UpdatePlantRequest{Status: &status, Notes: &notes})

	suite.Require().NoError(err)
	suite.Equal(models.PlantStatusGrowing, resp.Status)
	suite.Equal("staked", resp.Notes)
}

func (suite *PlantServiceTestSuite) TestUpdateValidation() {
	bad := models.PlantStatus("wilted")
	color := "green"

	_, err := suite.plantService.Update(suite.ctx, uuid.New(), &service.UpdatePlantRequest{Status: &bad, Color: &color})

	verrs, ok := apperrors.AsValidationErrors(err)
	suite.Require().True(ok)
	suite.Equal([]string{
		"color: must be a valid hex color (e.g., #10b981)",
		"status: must be one of: planned, planted, growing, harvested",
	}, verrs.Messages())
}

func (suite *PlantServiceTestSuite) TestListByRaisedBedNotFound() {
	id := uuid.New()
	suite.mockBedRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.plantService.ListByRaisedBed(suite.ctx, id)
	suite.ErrorIs(err, apperrors.ErrRaisedBedNotFound)
}

func (suite *PlantServiceTestSuite) TestListByGarden() {
	plant := models.Plant{BaseModel: models.BaseModel{ID: uuid.New()}, GardenID: suite.garden.ID}
	suite.mockGardenRepo.EXPECT().GetByID(suite.garden.ID).Return(suite.garden, nil)
	suite.mockRepo.EXPECT().GetByGardenID(suite.garden.ID).Return([]models.Plant{plant}, nil)

	resp, err := suite.plantService.ListByGarden(suite.ctx, suite.garden.ID)

	suite.Require().NoError(err)
	suite.Require().Len(resp, 1)
	suite.Equal(plant.ID, resp[0].ID)
}

func (suite *PlantServiceTestSuite) TestDelete() {
	plant := &models.Plant{BaseModel: models.BaseModel{ID: uuid.New()}}
	suite.mockRepo.EXPECT().GetByID(plant.ID).Return(plant, nil)
	suite.mockRepo.EXPECT().Delete(plant.ID).Return(nil)

	suite.NoError(suite.plantService.Delete(suite.ctx, plant.ID))
}

// TestPlantServiceTestSuite runs the test suite
func TestPlantServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PlantServiceTestSuite))
}
