package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"garden-planner-backend/internal/api/handlers"
	"garden-planner-backend/internal/database/models"
	apperrors "garden-planner-backend/internal/errors"
	"garden-planner-backend/internal/mocks"
	"garden-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RaisedBedHandlerTestSuite defines the test suite for RaisedBedHandler
type RaisedBedHandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockBedSvc *mocks.MockRaisedBedServiceInterface
	handler    *handlers.RaisedBedHandler
	router     *gin.Engine
}

func (suite *RaisedBedHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (suite *RaisedBedHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockBedSvc = mocks.NewMockRaisedBedServiceInterface(suite.ctrl)
	suite.handler = handlers.NewRaisedBedHandler(suite.mockBedSvc)

	suite.router = gin.New()
	v1 := suite.router.Group("/api/v1")
	{
		v1.GET("/gardens/:id/raised-beds", suite.handler.ListRaisedBeds)
		v1.POST("/gardens/:id/raised-beds", suite.handler.PlaceRaisedBed)
		v1.GET("/raised-beds/:id", suite.handler.GetRaisedBed)
		v1.PATCH("/raised-beds/:id", suite.handler.UpdateRaisedBed)
		v1.DELETE("/raised-beds/:id", suite.handler.DeleteRaisedBed)
		v1.GET("/materials", suite.handler.ListMaterials)
	}
}

func (suite *RaisedBedHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RaisedBedHandlerTestSuite) TestListRaisedBeds_IncludePending() {
	gardenID := uuid.New()
	resp := &service.RaisedBedListResponse{
		RaisedBeds: []service.RaisedBedResponse{{ID: uuid.New(), GardenID: gardenID}},
		Pending:    []service.PendingPlacementResponse{{CorrelationID: "drop-1", Kind: service.PlacementKindRaisedBed}},
	}
	suite.mockBedSvc.EXPECT().ListByGarden(gomock.Any(), gardenID, true).Return(resp, nil)

	w := performJSON(suite.router, http.MethodGet, "/api/v1/gardens/"+gardenID.String()+"/raised-beds?include_pending=true", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var got service.RaisedBedListResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(suite.T(), got.RaisedBeds, 1)
	assert.Equal(suite.T(), "drop-1", got.Pending[0].CorrelationID)
}

func (suite *RaisedBedHandlerTestSuite) TestListRaisedBeds_DefaultExcludesPending() {
	gardenID := uuid.New()
	suite.mockBedSvc.EXPECT().ListByGarden(gomock.Any(), gardenID, false).Return(&service.RaisedBedListResponse{RaisedBeds: []service.RaisedBedResponse{}}, nil)

	w := performJSON(suite.router, http.MethodGet, "/api/v1/gardens/"+gardenID.String()+"/raised-beds", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `{"raised_beds":[]}`, w.Body.String())
}

func (suite *RaisedBedHandlerTestSuite) TestPlaceRaisedBed_PassesCorrelationID() {
	gardenID := uuid.New()
	suite.mockBedSvc.EXPECT().Place(gomock.Any(), gardenID, gomock.Any(), "drop-7").DoAndReturn(
		func(_ context.Context, _ uuid.UUID, req *service.PlaceRaisedBedRequest, _ string) (*service.RaisedBedResponse, error) {
			assert.Equal(suite.T(), 1.13, req.X)
			assert.NotNil(suite.T(), req.Material)
			assert.Equal(suite.T(), models.MaterialStone, *req.Material)
			assert.Nil(suite.T(), req.Width)
			return &service.RaisedBedResponse{ID: uuid.New(), GardenID: gardenID, X: 1.25, Color: "#696969"}, nil
		})

	w := performJSON(suite.router, http.MethodPost, "/api/v1/gardens/"+gardenID.String()+"/raised-beds",
		map[string]interface{}{"x": 1.13, "y": 0, "material": "stone"},
		handlers.CorrelationIDHeader, "drop-7")

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "#696969")
}

func (suite *RaisedBedHandlerTestSuite) TestPlaceRaisedBed_Rejected() {
	gardenID := uuid.New()
	verr := apperrors.NewValidationErrors("Bed placement is outside garden bounds",
		apperrors.ValidationError{Field: "x", Message: "Item extends beyond garden width"},
	)
	suite.mockBedSvc.EXPECT().Place(gomock.Any(), gardenID, gomock.Any(), "").Return(nil, verr)

	w := performJSON(suite.router, http.MethodPost, "/api/v1/gardens/"+gardenID.String()+"/raised-beds", map[string]interface{}{"x": 2})

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(suite.T(),
		`{"error":"Bed placement is outside garden bounds","details":["x: Item extends beyond garden width"]}`,
		w.Body.String())
}

func (suite *RaisedBedHandlerTestSuite) TestPlaceRaisedBed_CorrelationErrors() {
	gardenID := uuid.New()
	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "duplicate", err: apperrors.ErrDuplicateCorrelated, status: http.StatusConflict},
		{name: "malformed", err: apperrors.ErrInvalidCorrelation, status: http.StatusBadRequest},
		{name: "garden missing", err: apperrors.ErrGardenNotFound, status: http.StatusNotFound},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.mockBedSvc.EXPECT().Place(gomock.Any(), gardenID, gomock.Any(), gomock.Any()).Return(nil, tc.err)

			w := performJSON(suite.router, http.MethodPost, "/api/v1/gardens/"+gardenID.String()+"/raised-beds",
				map[string]interface{}{}, handlers.CorrelationIDHeader, "x")

			assert.Equal(suite.T(), tc.status, w.Code)
		})
	}
}

func (suite *RaisedBedHandlerTestSuite) TestGetRaisedBed_InvalidID() {
	w := performJSON(suite.router, http.MethodGet, "/api/v1/raised-beds/123", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.JSONEq(suite.T(), `{"error":"Invalid raised bed ID"}`, w.Body.String())
}

func (suite *RaisedBedHandlerTestSuite) TestUpdateRaisedBed() {
	id := uuid.New()
	suite.mockBedSvc.EXPECT().Update(gomock.Any(), id, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, req *service.UpdateRaisedBedRequest) (*service.RaisedBedResponse, error) {
			assert.Equal(suite.T(), models.MaterialMetal, *req.Material)
			return &service.RaisedBedResponse{ID: id, Material: models.MaterialMetal, Color: "#708090"}, nil
		})

	w := performJSON(suite.router, http.MethodPatch, "/api/v1/raised-beds/"+id.String(), map[string]interface{}{"material": "metal"})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "#708090")
}

func (suite *RaisedBedHandlerTestSuite) TestDeleteRaisedBed() {
	id := uuid.New()
	suite.mockBedSvc.EXPECT().Delete(gomock.Any(), id).Return(nil)

	w := performJSON(suite.router, http.MethodDelete, "/api/v1/raised-beds/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *RaisedBedHandlerTestSuite) TestDeleteRaisedBed_NotFound() {
	id := uuid.New()
	suite.mockBedSvc.EXPECT().Delete(gomock.Any(), id).Return(apperrors.ErrRaisedBedNotFound)

	w := performJSON(suite.router, http.MethodDelete, "/api/v1/raised-beds/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *RaisedBedHandlerTestSuite) TestListMaterials() {
	suite.mockBedSvc.EXPECT().MaterialColors().Return(models.MaterialColors())

	w := performJSON(suite.router, http.MethodGet, "/api/v1/materials", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `[
		{"material":"wood","color":"#8B4513"},
		{"material":"stone","color":"#696969"},
		{"material":"metal","color":"#708090"},
		{"material":"composite","color":"#654321"}
	]`, w.Body.String())
}

func TestRaisedBedHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RaisedBedHandlerTestSuite))
}
