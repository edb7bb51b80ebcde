package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"garden-planner-backend/internal/api/handlers"
	"garden-planner-backend/internal/cascade"
	apperrors "garden-planner-backend/internal/errors"
	"garden-planner-backend/internal/mocks"
	"garden-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// GardenHandlerTestSuite defines the test suite for GardenHandler
type GardenHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockGardenSvc *mocks.MockGardenServiceInterface
	handler       *handlers.GardenHandler
	router        *gin.Engine
}

func (suite *GardenHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (suite *GardenHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockGardenSvc = mocks.NewMockGardenServiceInterface(suite.ctrl)
	suite.handler = handlers.NewGardenHandler(suite.mockGardenSvc)

	suite.router = gin.New()
	v1 := suite.router.Group("/api/v1")
	{
		v1.GET("/gardens", suite.handler.ListGardens)
		v1.POST("/gardens", suite.handler.CreateGarden)
		v1.POST("/gardens/bulk-delete", suite.handler.BulkDeleteGardens)
		v1.GET("/gardens/:id", suite.handler.GetGarden)
		v1.PATCH("/gardens/:id", suite.handler.UpdateGarden)
		v1.DELETE("/gardens/:id", suite.handler.DeleteGarden)
		v1.GET("/gardens/:id/layout", suite.handler.GetGardenLayout)
	}
}

func (suite *GardenHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *GardenHandlerTestSuite) TestListGardens() {
	gardens := []service.GardenResponse{{ID: uuid.New(), Name: "Backyard", Width: 3, Height: 2.5}}
	suite.mockGardenSvc.EXPECT().List(gomock.Any()).Return(gardens, nil)

	w := performJSON(suite.router, http.MethodGet, "/api/v1/gardens", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var got []service.GardenResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(suite.T(), got, 1)
	assert.Equal(suite.T(), "Backyard", got[0].Name)
}

func (suite *GardenHandlerTestSuite) TestCreateGarden() {
	created := &service.GardenResponse{ID: uuid.New(), Name: "Backyard", Width: 3, Height: 2.5}
	suite.mockGardenSvc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *service.CreateGardenRequest) (*service.GardenResponse, error) {
			assert.Equal(suite.T(), "Backyard", req.Name)
			assert.Equal(suite.T(), 3.0, req.Width)
			return created, nil
		})

	w := performJSON(suite.router, http.MethodPost, "/api/v1/gardens", map[string]interface{}{"name": "Backyard", "width": 3, "height": 2.5})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	assert.Contains(suite.T(), w.Body.String(), created.ID.String())
}

func (suite *GardenHandlerTestSuite) TestCreateGarden_InvalidJSON() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/gardens", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Invalid request body")
}

func (suite *GardenHandlerTestSuite) TestCreateGarden_ValidationError() {
	verr := apperrors.NewValidationErrors("Invalid garden",
		apperrors.ValidationError{Field: "width", Message: "must be at least 0.5"},
	)
	suite.mockGardenSvc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, verr)

	w := performJSON(suite.router, http.MethodPost, "/api/v1/gardens", map[string]interface{}{"name": "x", "width": 0.1, "height": 1})

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, w.Code)
	var got handlers.ValidationErrorResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "Invalid garden", got.Error)
	assert.Equal(suite.T(), []string{"width: must be at least 0.5"}, got.Details)
}

func (suite *GardenHandlerTestSuite) TestGetGarden() {
	id := uuid.New()
	suite.mockGardenSvc.EXPECT().GetByID(gomock.Any(), id).Return(&service.GardenResponse{ID: id, Name: "Backyard"}, nil)

	w := performJSON(suite.router, http.MethodGet, "/api/v1/gardens/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *GardenHandlerTestSuite) TestGetGarden_InvalidID() {
	w := performJSON(suite.router, http.MethodGet, "/api/v1/gardens/not-a-uuid", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.JSONEq(suite.T(), `{"error":"Invalid garden ID"}`, w.Body.String())
}

func (suite *GardenHandlerTestSuite) TestGetGarden_NotFound() {
	id := uuid.New()
	suite.mockGardenSvc.EXPECT().GetByID(gomock.Any(), id).Return(nil, apperrors.ErrGardenNotFound)

	w := performJSON(suite.router, http.MethodGet, "/api/v1/gardens/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.JSONEq(suite.T(), `{"error":"garden not found"}`, w.Body.String())
}

func (suite *GardenHandlerTestSuite) TestGetGardenLayout() {
	id := uuid.New()
	layout := &service.GardenLayoutResponse{
		Garden:     service.GardenResponse{ID: id},
		RaisedBeds: []service.RaisedBedResponse{{ID: uuid.New(), GardenID: id}},
		Plants:     []service.PlantResponse{},
	}
	suite.mockGardenSvc.EXPECT().GetLayout(gomock.Any(), id).Return(layout, nil)

	w := performJSON(suite.router, http.MethodGet, "/api/v1/gardens/"+id.String()+"/layout", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var got service.GardenLayoutResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(suite.T(), got.RaisedBeds, 1)
	assert.NotNil(suite.T(), got.Plants)
}

func (suite *GardenHandlerTestSuite) TestUpdateGarden_EmptyBody() {
	id := uuid.New()
	suite.mockGardenSvc.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(nil, apperrors.ErrEmptyUpdate)

	w := performJSON(suite.router, http.MethodPatch, "/api/v1/gardens/"+id.String(), map[string]interface{}{})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "no fields to update")
}

func (suite *GardenHandlerTestSuite) TestUpdateGarden() {
	id := uuid.New()
	suite.mockGardenSvc.EXPECT().Update(gomock.Any(), id, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, req *service.UpdateGardenRequest) (*service.GardenResponse, error) {
			assert.NotNil(suite.T(), req.Name)
			assert.Nil(suite.T(), req.Width)
			return &service.GardenResponse{ID: id, Name: *req.Name}, nil
		})

	w := performJSON(suite.router, http.MethodPatch, "/api/v1/gardens/"+id.String(), map[string]interface{}{"name": "Front"})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Front")
}

func (suite *GardenHandlerTestSuite) TestDeleteGarden() {
	id := uuid.New()
	suite.mockGardenSvc.EXPECT().Delete(gomock.Any(), id).Return(nil)

	w := performJSON(suite.router, http.MethodDelete, "/api/v1/gardens/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *GardenHandlerTestSuite) TestDeleteGarden_CascadeFailure() {
	id := uuid.New()
	cascadeErr := &cascade.Error{Rule: "garden_delete", Collection: cascade.CollectionGardens, ID: id, Err: errors.New("connection reset")}
	suite.mockGardenSvc.EXPECT().Delete(gomock.Any(), id).Return(cascadeErr)

	w := performJSON(suite.router, http.MethodDelete, "/api/v1/gardens/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "cascade garden_delete on gardens")
}

func (suite *GardenHandlerTestSuite) TestBulkDeleteGardens() {
	a, b := uuid.New(), uuid.New()
	resp := &service.BulkDeleteGardensResponse{
		Results: []service.BulkDeleteResult{{ID: a, Deleted: true}, {ID: b, Error: "garden not found"}},
		Deleted: 1,
		Failed:  1,
	}
	suite.mockGardenSvc.EXPECT().BulkDelete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *service.BulkDeleteGardensRequest) (*service.BulkDeleteGardensResponse, error) {
			assert.Equal(suite.T(), []uuid.UUID{a, b}, req.IDs)
			return resp, nil
		})

	w := performJSON(suite.router, http.MethodPost, "/api/v1/gardens/bulk-delete", map[string]interface{}{"ids": []string{a.String(), b.String()}})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var got service.BulkDeleteGardensResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), 1, got.Deleted)
	assert.Equal(suite.T(), 1, got.Failed)
}

func TestGardenHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GardenHandlerTestSuite))
}
