package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/logger"
	usecasemocks "github.com/amirhossein-jamali/finance-tracker/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupReportRouter(t *testing.T) (*gin.Engine, *usecasemocks.MockReportUseCase) {
	t.Helper()

	useCase := usecasemocks.NewMockReportUseCase(t)
	h := NewReportHandler(useCase, logger.NewNoopLogger())

	router := gin.New()
	router.GET("/report/weekly", h.Weekly)
	router.GET("/report/breakdown", h.Breakdown)

	return router, useCase
}

func TestReportHandler_Weekly(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, useCase := setupReportRouter(t)
		useCase.On("Weekly", mock.Anything).Return([]entity.WeeklyBucket{
			{Week: "2024-01-01", Credit: 100, Debit: 40, Balance: 60},
			{Week: "2024-01-08", Credit: 0, Debit: 15, Balance: -15},
		}, nil).Once()

		w := perform(router, http.MethodGet, "/report/weekly", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[
			{"week":"2024-01-01","credit":100,"debit":40,"balance":60},
			{"week":"2024-01-08","credit":0,"debit":15,"balance":-15}
		]`, w.Body.String())
	})

	t.Run("Empty", func(t *testing.T) {
		router, useCase := setupReportRouter(t)
		useCase.On("Weekly", mock.Anything).Return(nil, nil).Once()

		w := perform(router, http.MethodGet, "/report/weekly", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("Store failure", func(t *testing.T) {
		router, useCase := setupReportRouter(t)
		useCase.On("Weekly", mock.Anything).Return(nil, errors.New("load transactions: disk I/O error")).Once()

		w := perform(router, http.MethodGet, "/report/weekly", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, domainerr.CodeInternalServer, decodeError(t, w).Code)
	})
}

func TestReportHandler_Breakdown(t *testing.T) {
	t.Run("Success keeps order", func(t *testing.T) {
		router, useCase := setupReportRouter(t)
		useCase.On("Breakdown", mock.Anything).Return([]entity.BreakdownEntry{
			{Type: entity.TypeCredit, Category: "Salary", Amount: 30},
			{Type: entity.TypeCredit, Category: "Uncategorized", Amount: 5},
			{Type: entity.TypeDebit, Category: "Rent", Amount: 20},
		}, nil).Once()

		w := perform(router, http.MethodGet, "/report/breakdown", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t,
			`[{"type":"credit","category":"Salary","amount":30},{"type":"credit","category":"Uncategorized","amount":5},{"type":"debit","category":"Rent","amount":20}]`,
			w.Body.String())
	})

	t.Run("Store failure", func(t *testing.T) {
		router, useCase := setupReportRouter(t)
		useCase.On("Breakdown", mock.Anything).Return(nil, domainerr.ErrDatabaseConnection).Once()

		w := perform(router, http.MethodGet, "/report/breakdown", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
