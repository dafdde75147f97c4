package handlers

import (
	"errors"
	"net/http"

	"github.com/finsight/backend/internal/apierror"
	"github.com/finsight/backend/internal/logger"
	"github.com/finsight/backend/internal/models"
	"github.com/finsight/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type BudgetHandler struct {
	budgetService service.BudgetService
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// CreateFiftyThirtyTwenty handles POST /api/v1/budgets/fifty-thirty-twenty
func (h *BudgetHandler) CreateFiftyThirtyTwenty(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req models.CreateFiftyThirtyTwentyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid request body"))
		return
	}

	budget, err := h.budgetService.CreateFiftyThirtyTwenty(c.Request.Context(), userID, &req)
	if err != nil {
		h.writeError(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, budget)
}

// CreateZeroBased handles POST /api/v1/budgets/zero-based
func (h *BudgetHandler) CreateZeroBased(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req models.CreateZeroBasedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid request body"))
		return
	}

	budget, err := h.budgetService.CreateZeroBased(c.Request.Context(), userID, &req)
	if err != nil {
		h.writeError(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, budget)
}

// CreateEnvelope handles POST /api/v1/budgets/envelope
func (h *BudgetHandler) CreateEnvelope(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req models.CreateEnvelopeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid request body"))
		return
	}

	budget, err := h.budgetService.CreateEnvelope(c.Request.Context(), userID, &req)
	if err != nil {
		h.writeError(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, budget)
}

// ListBudgets handles GET /api/v1/budgets
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	budgets, err := h.budgetService.GetUserBudgets(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": budgets})
}

// RefreshSpending handles POST /api/v1/budgets/:id/refresh
func (h *BudgetHandler) RefreshSpending(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	budgetID := c.Param("id")
	budget, err := h.budgetService.RefreshSpending(c.Request.Context(), userID, budgetID)
	if err != nil {
		h.writeError(c, err, budgetID)
		return
	}

	c.JSON(http.StatusOK, budget)
}

// AnalyzeBudget handles GET /api/v1/budgets/:id/analysis
func (h *BudgetHandler) AnalyzeBudget(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	budgetID := c.Param("id")
	analysis, err := h.budgetService.Analyze(c.Request.Context(), userID, budgetID)
	if err != nil {
		h.writeError(c, err, budgetID)
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// DeleteBudget handles DELETE /api/v1/budgets/:id
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	budgetID := c.Param("id")
	if err := h.budgetService.DeleteBudget(c.Request.Context(), userID, budgetID); err != nil {
		h.writeError(c, err, budgetID)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BudgetHandler) writeError(c *gin.Context, err error, budgetID string) {
	requestID := apierror.GetRequestID(c)
	switch {
	case errors.Is(err, service.ErrNotFound):
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Budget", budgetID))
	case errors.Is(err, service.ErrForbidden):
		apierror.WriteProblem(c, apierror.NewForbiddenError(requestID))
	default:
		logger.Ctx(c.Request.Context()).Error("budget request failed", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
	}
}
