package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/usecase/report"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/usecase/transaction"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/repository"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestServer wires the full stack over an in-memory store
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	appLogger := logger.NewNoopLogger()
	testDB := database.NewTestDBManager(t, appLogger)
	repo := repository.NewTransactionRepository(testDB.Manager.DB(), appLogger)

	return NewRouter(Handlers{
		Transaction: handler.NewTransactionHandler(
			transaction.NewTransactionService(repo, nil, testDB.TimeProvider, appLogger, false),
			100,
			appLogger,
		),
		Report: handler.NewReportHandler(report.NewReportService(repo, testDB.TimeProvider, appLogger), appLogger),
		Health: handler.NewHealthHandler(testDB.Manager, appLogger),
	}, appLogger, testDB.TimeProvider, middleware.CORSOptions{})
}

func do(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createTx(t *testing.T, router *gin.Engine, txType string, amount float64, description, date string) dto.TransactionResponse {
	t.Helper()

	body := fmt.Sprintf(`{"type":%q,"amount":%v,"description":%q`, txType, amount, description)
	if date != "" {
		body += fmt.Sprintf(`,"date":%q`, date)
	}
	body += "}"

	w := do(t, router, http.MethodPost, "/transactions/", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestAPI_CreateThenList(t *testing.T) {
	router := newTestServer(t)

	created := createTx(t, router, "credit", 12.5, "Salary", "")
	assert.NotZero(t, created.ID)
	assert.False(t, created.Date.IsZero(), "date is assigned by the server")

	w := do(t, router, http.MethodGet, "/transactions", "")
	require.Equal(t, http.StatusOK, w.Code)

	var listed []dto.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
	assert.Equal(t, "credit", listed[0].Type)
	assert.Equal(t, 12.5, listed[0].Amount)
	assert.Equal(t, "Salary", listed[0].Description)
	assert.True(t, created.Date.Equal(listed[0].Date))
}

func TestAPI_DeleteOnce(t *testing.T) {
	router := newTestServer(t)
	created := createTx(t, router, "debit", 3, "coffee", "")
	path := fmt.Sprintf("/transactions/%d", created.ID)

	w := do(t, router, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Transaction deleted successfully"}`, w.Body.String())

	w = do(t, router, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"code":4040,"message":"Transaction not found"}`, w.Body.String())
}

func TestAPI_DeleteNonPositiveID(t *testing.T) {
	router := newTestServer(t)

	for _, path := range []string{"/transactions/0", "/transactions/-1"} {
		w := do(t, router, http.MethodDelete, path, "")
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.JSONEq(t, `{"code":4040,"message":"Transaction not found"}`, w.Body.String(), path)
	}

	w := do(t, router, http.MethodDelete, "/transactions/abc", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAPI_BlankTypeIsStored(t *testing.T) {
	router := newTestServer(t)

	for _, txType := range []string{"", "  "} {
		created := createTx(t, router, txType, 4, "misc", "2024-01-02T10:00:00Z")
		assert.Equal(t, txType, created.Type)
	}

	w := do(t, router, http.MethodGet, "/report/breakdown", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestAPI_WeeklyReport(t *testing.T) {
	router := newTestServer(t)
	createTx(t, router, "credit", 100, "Salary", "2024-01-01T09:00:00Z")
	createTx(t, router, "debit", 40, "Food", "2024-01-03T18:30:00Z")
	createTx(t, router, "debit", 15, "Fuel", "2024-01-08T07:00:00Z")
	createTx(t, router, "transfer", 999, "Savings", "2024-01-15T07:00:00Z")

	w := do(t, router, http.MethodGet, "/report/weekly", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"week":"2024-01-01","credit":100,"debit":40,"balance":60},
		{"week":"2024-01-08","credit":0,"debit":15,"balance":-15},
		{"week":"2024-01-15","credit":0,"debit":0,"balance":0}
	]`, w.Body.String())
}

func TestAPI_BreakdownReport(t *testing.T) {
	router := newTestServer(t)
	createTx(t, router, "credit", 10, "  salary ", "")
	createTx(t, router, "credit", 20, "SALARY", "")
	createTx(t, router, "credit", 5, "", "")
	createTx(t, router, "transfer", 7, "Savings", "")

	w := do(t, router, http.MethodGet, "/report/breakdown", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"type":"credit","category":"Salary","amount":30},
		{"type":"credit","category":"Uncategorized","amount":5}
	]`, w.Body.String())
}

func TestAPI_EmptyReports(t *testing.T) {
	router := newTestServer(t)

	for _, path := range []string{"/report/weekly", "/report/breakdown", "/transactions/"} {
		w := do(t, router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, `[]`, w.Body.String(), path)
	}
}

func TestAPI_MalformedInput(t *testing.T) {
	router := newTestServer(t)

	w := do(t, router, http.MethodPost, "/transactions", `{"type":"credit","amount":"lots","description":"x"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(t, router, http.MethodGet, "/transactions/", "")
	assert.JSONEq(t, `[]`, w.Body.String(), "rejected input never reaches the store")
}

func TestAPI_Health(t *testing.T) {
	router := newTestServer(t)

	w := do(t, router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}
