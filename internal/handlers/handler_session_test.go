package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/vendsim/vendsim/internal/adapters/memory"
	portssvc "github.com/vendsim/vendsim/internal/core/ports/services"
	"github.com/vendsim/vendsim/internal/core/services"
	"github.com/vendsim/vendsim/internal/dto"
	"github.com/vendsim/vendsim/internal/handlers"
	"github.com/vendsim/vendsim/internal/platform/config"
)

type SessionHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *SessionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	repo := memory.NewAccountRepository()
	catalog := services.NewCatalogService()
	fullStock := services.NewStoreFactoryWithQuantities(func(n int) int { return 20 })

	container := &portssvc.ServiceContainer{
		Catalog: catalog,
		Account: services.NewAccountService(repo),
		Session: services.NewSessionService(catalog, repo, services.NewConversionService(), fullStock),
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &config.Config{}, container)
}

func (suite *SessionHandlerTestSuite) perform(method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *SessionHandlerTestSuite) TestHealth() {
	w := suite.perform(http.MethodGet, "/health", "")
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *SessionHandlerTestSuite) TestCatalog() {
	w := suite.perform(http.MethodGet, "/api/v1/catalog", "")
	suite.Require().Equal(http.StatusOK, w.Code)

	var items []dto.CatalogItemResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &items))
	suite.Len(items, 9)
	suite.Equal("Kawa", items[0].Name)
	suite.Equal("2.00", items[0].BasePrice)
}

func (suite *SessionHandlerTestSuite) TestListAccounts() {
	w := suite.perform(http.MethodGet, "/api/v1/accounts", "")
	suite.Require().Equal(http.StatusOK, w.Code)

	var accounts []dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &accounts))
	suite.Len(accounts, 3)
}

func (suite *SessionHandlerTestSuite) TestCashFlowEndToEnd() {
	w := suite.perform(http.MethodPost, "/api/v1/session/product", `{"name":"Cola"}`)
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.perform(http.MethodPost, "/api/v1/session/currency", `{"code":"PLN"}`)
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.perform(http.MethodPost, "/api/v1/session/payment-type", `{"type":"cash"}`)
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.perform(http.MethodGet, "/api/v1/session/cash/buttons", "")
	suite.Require().Equal(http.StatusOK, w.Code)
	var buttons dto.CashButtonsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &buttons))
	suite.Equal([]string{"5.00", "2.00", "1.00", "0.50"}, buttons.Values)

	for _, coin := range []string{"5.00", "1.00"} {
		w = suite.perform(http.MethodPost, "/api/v1/session/cash/coin", `{"value":"`+coin+`"}`)
		suite.Require().Equal(http.StatusOK, w.Code)
	}

	w = suite.perform(http.MethodPost, "/api/v1/session/cash/pay", "")
	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.SessionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("CASH_RESULT", resp.State)
	suite.Equal("1.00", resp.PaidAmount)
	suite.NotEmpty(resp.ReceiptID)

	w = suite.perform(http.MethodGet, "/api/v1/session/change", "")
	suite.Require().Equal(http.StatusOK, w.Code)
	var table dto.TableResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &table))
	suite.Equal([]string{"1.00"}, table.Value)
	suite.Equal([]string{"1"}, table.Amount)

	w = suite.perform(http.MethodPost, "/api/v1/session/reset", "")
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("IDLE", resp.State)
	suite.True(resp.ProductSelectionEnabled)
}

func (suite *SessionHandlerTestSuite) TestCardFlowEndToEnd() {
	suite.perform(http.MethodPost, "/api/v1/session/product", `{"name":"Kawa"}`)
	suite.perform(http.MethodPost, "/api/v1/session/currency", `{"code":"USD"}`)
	suite.perform(http.MethodPost, "/api/v1/session/payment-type", `{"type":"card"}`)

	// precondition order: account first, then card
	w := suite.perform(http.MethodPost, "/api/v1/session/card/pay", "")
	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	w = suite.perform(http.MethodPost, "/api/v1/session/card/account", `{"accountID":"acc-001"}`)
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.perform(http.MethodPost, "/api/v1/session/card/pay", "")
	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	w = suite.perform(http.MethodPost, "/api/v1/session/card/card", `{"cardNumber":"4532 7712 0002"}`)
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.perform(http.MethodPost, "/api/v1/session/card/pay", "")
	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.SessionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp.Display, "Jan Kowalski")
}

func (suite *SessionHandlerTestSuite) TestIntentErrorStatuses() {
	// ordering violation
	w := suite.perform(http.MethodPost, "/api/v1/session/currency", `{"code":"PLN"}`)
	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	// binding failure on the currency code
	suite.perform(http.MethodPost, "/api/v1/session/product", `{"name":"Cola"}`)
	w = suite.perform(http.MethodPost, "/api/v1/session/currency", `{"code":"XXX"}`)
	suite.Equal(http.StatusBadRequest, w.Code)

	// unknown account
	suite.perform(http.MethodPost, "/api/v1/session/currency", `{"code":"PLN"}`)
	suite.perform(http.MethodPost, "/api/v1/session/payment-type", `{"type":"card"}`)
	w = suite.perform(http.MethodPost, "/api/v1/session/card/account", `{"accountID":"acc-999"}`)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *SessionHandlerTestSuite) TestUnknownProductIs404() {
	w := suite.perform(http.MethodPost, "/api/v1/session/product", `{"name":"Pepsi"}`)
	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Run Suite ---
func TestSessionHandler(t *testing.T) {
	suite.Run(t, new(SessionHandlerTestSuite))
}
