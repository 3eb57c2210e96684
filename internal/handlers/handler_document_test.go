package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/ediba/backoffice_app/internal/apperrors"
	"github.com/ediba/backoffice_app/internal/core/domain"
	portssvc "github.com/ediba/backoffice_app/internal/core/ports/services"
	"github.com/ediba/backoffice_app/internal/dto"
	"github.com/ediba/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock DocumentService ---
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) GetDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) ListDocuments(ctx context.Context, params dto.ListDocumentsParams) ([]domain.Document, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockDocumentService) GetDocumentWorkflow(ctx context.Context, documentID string) ([]domain.Document, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockDocumentService) CreateDocument(ctx context.Context, req dto.CreateDocumentRequest, creatorUserID string) (*domain.Document, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) UpdateDocument(ctx context.Context, documentID string, req dto.UpdateDocumentRequest, userID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) DeleteDocument(ctx context.Context, documentID string) error {
	args := m.Called(ctx, documentID)
	return args.Error(0)
}

func (m *MockDocumentService) ValidateQuote(ctx context.Context, quoteID string, userID string) (*domain.Document, error) {
	args := m.Called(ctx, quoteID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) CreateOrderFromQuote(ctx context.Context, quoteID string, req dto.CreateOrderRequest, userID string) (*domain.Document, error) {
	args := m.Called(ctx, quoteID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) CreateDeliveryFromOrder(ctx context.Context, orderID string, userID string) (*domain.Document, error) {
	args := m.Called(ctx, orderID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) CreateInvoiceFromDelivery(ctx context.Context, deliveryID string, userID string) (*domain.Document, error) {
	args := m.Called(ctx, deliveryID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) UpdateDocumentWorkflowStatus(ctx context.Context, documentID string, status domain.WorkflowStatus, userID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID, status, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) AddPayment(ctx context.Context, documentID string, req dto.AddPaymentRequest, userID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

var _ portssvc.DocumentSvcFacade = (*MockDocumentService)(nil)

// --- Test Suite ---
type DocumentHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockDocumentService *MockDocumentService
	jwtSecret           string
}

func (suite *DocumentHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "ediba-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *DocumentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockDocumentService = new(MockDocumentService)

	v1 := suite.router.Group("/api/v1")
	registerDocumentRoutes(v1, suite.mockDocumentService)
}

func (suite *DocumentHandlerTestSuite) doRequest(method, path string, body any, userID string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func documentPath(documentID string, rest string) string {
	return "/api/v1/documents/" + url.PathEscape(documentID) + rest
}

func sampleDocument(documentID string) *domain.Document {
	return &domain.Document{
		DocumentID:     documentID,
		Type:           domain.Invoice,
		Reference:      "2025-0007",
		Date:           time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		ClientName:     "SONABEL",
		TVA:            decimal.NewFromInt(18),
		Items:          []domain.LineItem{{Description: "Serveur", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(500)}},
		Status:         domain.StatusPending,
		WorkflowStatus: domain.WorkflowCompleted,
		Payments:       []domain.Payment{},
	}
}

func (suite *DocumentHandlerTestSuite) TestGetDocument_Success() {
	docID := "N°F2500007"
	userID := "user-1"
	suite.mockDocumentService.On("GetDocumentByID", mock.Anything, docID).
		Return(sampleDocument(docID), nil).Once()

	w := suite.doRequest(http.MethodGet, documentPath(docID, ""), nil, userID)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.DocumentResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(docID, resp.DocumentID)
	suite.True(resp.TotalHT.Equal(decimal.NewFromInt(1000)))
	suite.True(resp.TotalTTC.Equal(decimal.NewFromInt(1180)))
	suite.mockDocumentService.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestGetDocument_NotFound() {
	docID := "N°F2500099"
	suite.mockDocumentService.On("GetDocumentByID", mock.Anything, docID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, documentPath(docID, ""), nil, "user-1")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *DocumentHandlerTestSuite) TestGetDocument_Unauthenticated() {
	w := suite.doRequest(http.MethodGet, documentPath("N°F2500007", ""), nil, "")
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockDocumentService.AssertNotCalled(suite.T(), "GetDocumentByID")
}

func (suite *DocumentHandlerTestSuite) TestValidateQuote_InvalidState() {
	docID := "N°F2500007"
	suite.mockDocumentService.On("ValidateQuote", mock.Anything, docID, "user-1").
		Return(nil, fmt.Errorf("%w: document is not a quote", apperrors.ErrInvalidState)).Once()

	w := suite.doRequest(http.MethodPost, documentPath(docID, "/validate"), nil, "user-1")

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockDocumentService.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestCreateOrder_PassesUserFromToken() {
	quoteID := "N°D2500001"
	orderID := "N°CMD2500001"
	userID := "user-42"

	order := sampleDocument(orderID)
	order.Type = domain.Order
	order.OrderNumber = "LC-2025-17"

	suite.mockDocumentService.On("CreateOrderFromQuote", mock.Anything, quoteID,
		mock.MatchedBy(func(r dto.CreateOrderRequest) bool { return r.OrderNumber == "LC-2025-17" }),
		userID).
		Return(order, nil).Once()

	w := suite.doRequest(http.MethodPost, documentPath(quoteID, "/order"),
		dto.CreateOrderRequest{OrderNumber: "LC-2025-17"}, userID)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockDocumentService.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestAddPayment_ValidationError() {
	docID := "N°F2500007"
	suite.mockDocumentService.On("AddPayment", mock.Anything, docID, mock.Anything, "user-1").
		Return(nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)).Once()

	w := suite.doRequest(http.MethodPost, documentPath(docID, "/payments"),
		dto.AddPaymentRequest{Date: time.Now(), Amount: decimal.NewFromInt(5)}, "user-1")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *DocumentHandlerTestSuite) TestGetWorkflow_Success() {
	docID := "N°CMD2500001"
	chain := []domain.Document{
		*sampleDocument("N°D2500001"),
		*sampleDocument(docID),
		*sampleDocument("N°BL2500001"),
	}
	suite.mockDocumentService.On("GetDocumentWorkflow", mock.Anything, docID).
		Return(chain, nil).Once()

	w := suite.doRequest(http.MethodGet, documentPath(docID, "/workflow"), nil, "user-1")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListDocumentsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Documents, 3)
	suite.Equal("N°D2500001", resp.Documents[0].DocumentID)
	suite.mockDocumentService.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestUpdateWorkflowStatus_InvalidBody() {
	docID := "N°F2500007"

	w := suite.doRequest(http.MethodPut, documentPath(docID, "/workflow"),
		map[string]string{"workflowStatus": "not-a-status"}, "user-1")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockDocumentService.AssertNotCalled(suite.T(), "UpdateDocumentWorkflowStatus")
}

func TestDocumentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentHandlerTestSuite))
}
