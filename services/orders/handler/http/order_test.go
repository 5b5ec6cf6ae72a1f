package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/arkananta/rantai/internal/pkg/apperrors"
	"github.com/arkananta/rantai/internal/pkg/models"
	"github.com/arkananta/rantai/services/orders/mocks"
)

func TestPlaceOrder_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderUC := mocks.NewMockOrderUC(ctrl)
	handler := NewOrderHandler(mockOrderUC)

	e := echo.New()
	requestBody := `{"shopkeeperId": "S1", "items": [{"manufacturerId": "M1", "product": "bolts", "quantity": 2}]}`
	req := httptest.NewRequest(http.MethodPost, "/place-order", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockOrderUC.EXPECT().
		PlaceOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx interface{}, request *models.PlaceOrderRequest) (*models.PlaceOrderResponse, error) {
			assert.Equal(t, "S1", request.ShopkeeperID)
			assert.Len(t, request.Items, 1)
			assert.Equal(t, "M1", request.Items[0].ManufacturerID)
			return &models.PlaceOrderResponse{
				Message:  "Order placed successfully",
				OrderIDs: []int64{1},
			}, nil
		})

	// Act
	err := handler.PlaceOrder(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Order placed successfully", response["message"])
	assert.Equal(t, []interface{}{float64(1)}, response["orderIds"])
}

func TestPlaceOrder_InvalidItems(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderUC := mocks.NewMockOrderUC(ctrl)
	handler := NewOrderHandler(mockOrderUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/place-order", strings.NewReader(`{"shopkeeperId": "S1", "items": []}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockOrderUC.EXPECT().
		PlaceOrder(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrInvalidOrderItems)

	// Act
	err := handler.PlaceOrder(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Invalid order items", response["message"])
}

func TestPlaceOrder_MalformedPayload(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderUC := mocks.NewMockOrderUC(ctrl)
	handler := NewOrderHandler(mockOrderUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/place-order", strings.NewReader(`{not json}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Act: usecase is never reached
	err := handler.PlaceOrder(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetManufacturerOrders_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderUC := mocks.NewMockOrderUC(ctrl)
	handler := NewOrderHandler(mockOrderUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/manufacturer-orders/:manufacturerId")
	c.SetParamNames("manufacturerId")
	c.SetParamValues("M1")

	mockOrderUC.EXPECT().
		ListForManufacturer(gomock.Any(), "M1").
		Return([]models.ManufacturerOrder{
			{OrderID: 1, ManufacturerID: "M1", Status: models.OrderStatusPending},
		}, nil)

	// Act
	err := handler.GetManufacturerOrders(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response []map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Len(t, response, 1)
	assert.Equal(t, float64(1), response[0]["orderId"])
	assert.Equal(t, "M1", response[0]["manufacturerId"])
	assert.Equal(t, "pending", response[0]["status"])
}

func TestGetManufacturerOrders_NoOrders(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderUC := mocks.NewMockOrderUC(ctrl)
	handler := NewOrderHandler(mockOrderUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/manufacturer-orders/:manufacturerId")
	c.SetParamNames("manufacturerId")
	c.SetParamValues("M9")

	mockOrderUC.EXPECT().
		ListForManufacturer(gomock.Any(), "M9").
		Return([]models.ManufacturerOrder{}, nil)

	// Act
	err := handler.GetManufacturerOrders(c)

	// Assert: an unknown manufacturer gets an empty list, not an error
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestGetAllOrders_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderUC := mocks.NewMockOrderUC(ctrl)
	handler := NewOrderHandler(mockOrderUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/all-orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockOrderUC.EXPECT().
		ListAll(gomock.Any()).
		Return([]models.ManufacturerOrder{
			{OrderID: 1, ManufacturerID: "M1"},
			{OrderID: 2, ManufacturerID: "M2"},
		}, nil)

	// Act
	err := handler.GetAllOrders(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response []map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Len(t, response, 2)
}

func TestGetAdminRequests_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderUC := mocks.NewMockOrderUC(ctrl)
	handler := NewOrderHandler(mockOrderUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin-requests", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockOrderUC.EXPECT().
		AdminDirectory(gomock.Any()).
		Return(&models.AdminDirectory{
			Manufacturers: []models.User{
				{ID: "M1", Mobile: "8888888888", Role: models.RoleManufacturer},
				{ID: "M2", Mobile: "8888888887", Role: models.RoleManufacturer},
			},
			Transporters: []models.User{
				{ID: "T1", Mobile: "6666666666", Role: models.RoleTransporter},
			},
		}, nil)

	// Act
	err := handler.GetAdminRequests(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string][]map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Len(t, response["manufacturers"], 2)
	assert.Len(t, response["transporters"], 1)
	assert.Equal(t, "M1", response["manufacturers"][0]["id"])
}
