package handlers

import (
	"net/http"
	"strconv"

	"github.com/finsight/backend/internal/apierror"
	"github.com/finsight/backend/internal/logger"
	"github.com/finsight/backend/internal/models"
	"github.com/finsight/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type IncomeHandler struct {
	incomeService service.IncomeService
}

// NewIncomeHandler creates a new income handler
func NewIncomeHandler(incomeService service.IncomeService) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService}
}

// CreateIncome handles POST /api/v1/incomes
func (h *IncomeHandler) CreateIncome(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req models.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid request body"))
		return
	}

	income, err := h.incomeService.CreateIncome(c.Request.Context(), userID, &req)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		logger.Ctx(c.Request.Context()).Error("failed to create income", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusCreated, income)
}

// ListIncomes handles GET /api/v1/incomes
func (h *IncomeHandler) ListIncomes(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	incomes, err := h.incomeService.GetUserIncomes(c.Request.Context(), userID, limit, offset)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		logger.Ctx(c.Request.Context()).Error("failed to list incomes", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"incomes": incomes})
}
