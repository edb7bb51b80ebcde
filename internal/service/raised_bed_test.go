package service_test

import (
	"context"
	"errors"
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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// RaisedBedServiceTestSuite defines the test suite for RaisedBedService
type RaisedBedServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockRaisedBedRepositoryInterface
	mockGardenRepo *mocks.MockGardenRepositoryInterface
	mockPlantRepo  *mocks.MockPlantRepositoryInterface
	metrics        *metrics.Metrics
	overlay        *service.PlacementOverlay
	bedService     *service.RaisedBedService
	garden         *models.Garden
	ctx            context.Context
}

// SetupTest sets up the test suite
func (suite *RaisedBedServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockRaisedBedRepositoryInterface(suite.ctrl)
	suite.mockGardenRepo = mocks.NewMockGardenRepositoryInterface(suite.ctrl)
	suite.mockPlantRepo = mocks.NewMockPlantRepositoryInterface(suite.ctrl)
	suite.metrics = metrics.New(prometheus.NewRegistry())
	suite.overlay = service.NewPlacementOverlay(time.Minute, suite.metrics)
	registry := cascade.NewDefaultRegistry(suite.mockPlantRepo, suite.mockRepo, suite.metrics)
	suite.bedService = service.NewRaisedBedService(suite.mockRepo, suite.mockGardenRepo, registry, suite.overlay, suite.metrics, validation.New())
	suite.garden = newGarden(3, 2.5)
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *RaisedBedServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RaisedBedServiceTestSuite) TestPlaceUsesDefaults() {
	suite.mockGardenRepo.EXPECT().GetByID(suite.garden.ID).Return(suite.garden, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(b *models.RaisedBed) error {
		b.ID = uuid.New()
		return nil
	})

	resp, err := suite.bedService.Place(suite.ctx, suite.garden.ID, &service.PlaceRaisedBedRequest{X: 1.13, Y: 0.05}, "")

	suite.Require().NoError(err)
	suite.Equal("New Bed", resp.Name)
	suite.Equal(1.25, resp.X)
	suite.Equal(0.0, resp.Y)
	suite.Equal(1.2, resp.Width)
	suite.Equal(2.4, resp.Height)
	suite.Equal(models.MaterialWood, resp.Material)
	suite.Equal("#8B4513", resp.Color)
	suite.Equal(1.0, testutil.ToFloat64(suite.metrics.Placements.WithLabelValues(service.PlacementKindRaisedBed, "accepted")))
}

func (suite *RaisedBedServiceTestSuite) TestPlaceConfirmsCorrelatedPlacement() {
	stone := models.MaterialStone
	var created uuid.UUID
	suite.mockGardenRepo.EXPECT().GetByID(suite.garden.ID).Return(suite.garden, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(b *models.RaisedBed) error {
		entry, ok := suite.overlay.Get("drop-1")
		suite.Require().True(ok)
		suite.Equal(optimistic.StatePending, entry.State)
		b.ID = uuid.New()
		created = b.ID
		return nil
	})

	resp, err := suite.bedService.Place(suite.ctx, suite.garden.ID, &service.PlaceRaisedBedRequest{Material: &stone}, "drop-1")

	suite.Require().NoError(err)
	suite.Equal("#696969", resp.Color)
	entry, ok := suite.overlay.Get("drop-1")
	suite.Require().True(ok)
	suite.Equal(optimistic.StateConfirmed, entry.State)
	suite.Equal(created, entry.RecordID)
	suite.Equal(0.0, testutil.ToFloat64(suite.metrics.PendingPlacements))
}

func (suite *RaisedBedServiceTestSuite) TestPlaceOutOfBoundsFailsPlacement() {
	suite.mockGardenRepo.EXPECT().GetByID(suite.garden.ID).Return(suite.garden, nil)

	_, err := suite.bedService.Place(suite.ctx, suite.garden.ID, &service.PlaceRaisedBedRequest{X: 2, Y: 0}, "drop-2")

	suite.Require().Error(err)
	verrs, ok := apperrors.AsValidationErrors(err)
	suite.Require().True(ok)
	suite.Equal(placement.ReasonBedOutOfBounds, verrs.Reason)
	suite.Equal([]string{"x: Item extends beyond garden width"}, verrs.Messages())

	entry, ok := suite.overlay.Get("drop-2")
	suite.Require().True(ok)
	suite.Equal(optimistic.StateFailed, entry.State)
	suite.Equal(placement.ReasonBedOutOfBounds, entry.Reason)
	suite.Equal([]string{"x: Item extends beyond garden width"}, entry.Details)
	suite.Equal(1.0, testutil.ToFloat64(suite.metrics.Placements.WithLabelValues(service.PlacementKindRaisedBed, "rejected")))
}

func (suite *RaisedBedServiceTestSuite) TestPlaceInvalidSettings() {
	blank := " "
	tall := 2.0
	suite.mockGardenRepo.EXPECT().GetByID(suite.garden.ID).Return(suite.garden, nil)

	_, err := suite.bedService.Place(suite.ctx, suite.garden.ID, &service.PlaceRaisedBedRequest{Name: &blank, BedHeight: &tall}, "")

	verrs, ok := apperrors.AsValidationErrors(err)
	suite.Require().True(ok)
	suite.Equal(placement.ReasonInvalidBedSettings, verrs.Reason)
	suite.Equal([]string{"name: is required", "bed_height: cannot exceed 1.5"}, verrs.Messages())
}

func (suite *RaisedBedServiceTestSuite) TestPlaceDuplicateCorrelationID() {
	suite.Require().NoError(suite.overlay.Stage("drop-3", service.PendingPlacement{Kind: service.PlacementKindPlant}))
	suite.mockGardenRepo.EXPECT().GetByID(suite.garden.ID).Return(suite.garden, nil)

	_, err := suite.bedService.Place(suite.ctx, suite.garden.ID, &service.PlaceRaisedBedRequest{}, "drop-3")

	suite.ErrorIs(err, apperrors.ErrDuplicateCorrelated)
}

func (suite *RaisedBedServiceTestSuite) TestPlaceGardenNotFound() {
	suite.mockGardenRepo.EXPECT().GetByID(suite.garden.ID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.bedService.Place(suite.ctx, suite.garden.ID, &service.PlaceRaisedBedRequest{}, "drop-4")

	suite.ErrorIs(err, apperrors.ErrGardenNotFound)
	_, ok := suite.overlay.Get("drop-4")
	suite.False(ok)
}

func (suite *RaisedBedServiceTestSuite) TestPlaceCreateFailureFailsPlacement() {
	suite.mockGardenRepo.EXPECT().GetByID(suite.garden.ID).Return(suite.garden, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(errors.New("disk full"))

	_, err := suite.bedService.Place(suite.ctx, suite.garden.ID, &service.PlaceRaisedBedRequest{}, "drop-5")

	suite.Require().Error(err)
	entry, ok := suite.overlay.Get("drop-5")
	suite.Require().True(ok)
	suite.Equal(optimistic.StateFailed, entry.State)
	suite.Contains(entry.Reason, "disk full")
}

func (suite *RaisedBedServiceTestSuite) TestListByGardenIncludesPending() {
	bed := models.RaisedBed{BaseModel: models.BaseModel{ID: uuid.New()}, GardenID: suite.garden.ID, Name: "North"}
	other := uuid.New()
	suite.Require().NoError(suite.overlay.Stage("a", service.PendingPlacement{Kind: service.PlacementKindRaisedBed, GardenID: suite.garden.ID, Name: "South"}))
	suite.Require().NoError(suite.overlay.Stage("b", service.PendingPlacement{Kind: service.PlacementKindPlant, GardenID: suite.garden.ID}))
	suite.Require().NoError(suite.overlay.Stage("c", service.PendingPlacement{Kind: service.PlacementKindRaisedBed, GardenID: other}))

	suite.mockGardenRepo.EXPECT().GetByID(suite.garden.ID).Return(suite.garden, nil).Times(2)
	suite.mockRepo.EXPECT().GetByGardenID(suite.garden.ID).Return([]models.RaisedBed{bed}, nil).Times(2)

	resp, err := suite.bedService.ListByGarden(suite.ctx, suite.garden.ID, true)
	suite.Require().NoError(err)
	suite.Require().Len(resp.RaisedBeds, 1)
	suite.Require().Len(resp.Pending, 1)
	suite.Equal("a", resp.Pending[0].CorrelationID)
	suite.Equal("South", resp.Pending[0].Name)

	resp, err = suite.bedService.ListByGarden(suite.ctx, suite.garden.ID, false)
	suite.Require().NoError(err)
	suite.Empty(resp.Pending)
}

func (suite *RaisedBedServiceTestSuite) TestUpdateMaterialChangesColor() {
	bed := &models.RaisedBed{BaseModel: models.BaseModel{ID: uuid.New()}, GardenID: suite.garden.ID, Material: models.MaterialWood, Color: "#8B4513"}
	metal := models.MaterialMetal

	suite.mockRepo.EXPECT().GetByID(bed.ID).Return(bed, nil)
	suite.mockRepo.EXPECT().Update(bed.ID, map[string]interface{}{"material": models.MaterialMetal, "color": "#708090"}).Return(nil)
	updated := *bed
	updated.Material, updated.Color = models.MaterialMetal, "#708090"
	suite.mockRepo.EXPECT().GetByID(bed.ID).Return(&updated, nil)

	resp, err := suite.bedService.Update(suite.ctx, bed.ID, &service.UpdateRaisedBedRequest{Material: &metal})

	suite.Require().NoError(err)
	suite.Equal("#708090", resp.Color)
}

func (suite *RaisedBedServiceTestSuite) TestUpdateExplicitColorWins() {
	id := uuid.New()
	metal := models.MaterialMetal
	color := "#123456"

	suite.mockRepo.EXPECT().GetByID(id).Return(&models.RaisedBed{BaseModel: models.BaseModel{ID: id}}, nil).Times(2)
	suite.mockRepo.EXPECT().Update(id, map[string]interface{}{"material": models.MaterialMetal, "color": "#123456"}).Return(nil)

	_, err := suite.bedService.Update(suite.ctx, id, &service.UpdateRaisedBedRequest{Material: &metal, Color: &color})
	suite.NoError(err)
}

func (suite *RaisedBedServiceTestSuite) TestUpdateInvalidMaterial() {
	gold := models.Material("gold")
	_, err := suite.bedService.Update(suite.ctx, uuid.New(), &service.UpdateRaisedBedRequest{Material: &gold})
	suite.True(apperrors.IsValidation(err))
}

func (suite *RaisedBedServiceTestSuite) TestDeleteClearsPlantReferences() {
	bed := &models.RaisedBed{BaseModel: models.BaseModel{ID: uuid.New()}, GardenID: suite.garden.ID}
	p1 := models.Plant{BaseModel: models.BaseModel{ID: uuid.New()}, RaisedBedID: &bed.ID}
	p2 := models.Plant{BaseModel: models.BaseModel{ID: uuid.New()}, RaisedBedID: &bed.ID}

	gomock.InOrder(
		suite.mockRepo.EXPECT().GetByID(bed.ID).Return(bed, nil),
		suite.mockRepo.EXPECT().Delete(bed.ID).Return(nil),
		suite.mockPlantRepo.EXPECT().GetByRaisedBedID(bed.ID).Return([]models.Plant{p1, p2}, nil),
		suite.mockPlantRepo.EXPECT().ClearRaisedBed(p1.ID).Return(nil),
		suite.mockPlantRepo.EXPECT().ClearRaisedBed(p2.ID).Return(nil),
	)

	suite.Require().NoError(suite.bedService.Delete(suite.ctx, bed.ID))
	suite.Equal(2.0, testutil.ToFloat64(suite.metrics.CascadeOperations.WithLabelValues(cascade.CollectionPlants, "clear_raised_bed")))
}

func (suite *RaisedBedServiceTestSuite) TestDeleteNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.bedService.Delete(suite.ctx, id), apperrors.ErrRaisedBedNotFound)
}

func (suite *RaisedBedServiceTestSuite) TestMaterialColors() {
	colors := suite.bedService.MaterialColors()
	suite.Len(colors, 4)
	suite.Equal("#654321", colors[models.MaterialComposite])
}

// TestRaisedBedServiceTestSuite runs the test suite
func TestRaisedBedServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RaisedBedServiceTestSuite))
}
