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

type SharedExpenseHandler struct {
	sharedService service.SharedExpenseService
}

// NewSharedExpenseHandler creates a new shared expense handler
func NewSharedExpenseHandler(sharedService service.SharedExpenseService) *SharedExpenseHandler {
	return &SharedExpenseHandler{sharedService: sharedService}
}

// CreateSharedExpense handles POST /api/v1/shared-expenses
func (h *SharedExpenseHandler) CreateSharedExpense(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	var req models.CreateSharedExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid request body"))
		return
	}

	expense, err := h.sharedService.CreateSharedExpense(c.Request.Context(), &req)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		if errors.Is(err, service.ErrSplitMismatch) {
			apierror.WriteProblem(c, apierror.NewSplitMismatchError(requestID, err.Error()))
			return
		}
		logger.Ctx(c.Request.Context()).Error("failed to create shared expense", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// ListGroupExpenses handles GET /api/v1/groups/:group_id/expenses
func (h *SharedExpenseHandler) ListGroupExpenses(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	groupID := c.Param("group_id")
	expenses, err := h.sharedService.GetGroupExpenses(c.Request.Context(), groupID)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		logger.Ctx(c.Request.Context()).Error("failed to list shared expenses", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

// GetGroupBalances handles GET /api/v1/groups/:group_id/balances
func (h *SharedExpenseHandler) GetGroupBalances(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	groupID := c.Param("group_id")
	balances, err := h.sharedService.GetGroupBalances(c.Request.Context(), groupID)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		logger.Ctx(c.Request.Context()).Error("failed to compute group balances", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, balances)
}

// MarkSplitPaid handles POST /api/v1/shared-expenses/:id/splits/:participant_id/pay
func (h *SharedExpenseHandler) MarkSplitPaid(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	expenseID := c.Param("id")
	participantID := c.Param("participant_id")

	expense, err := h.sharedService.MarkSplitPaid(c.Request.Context(), expenseID, participantID)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		if errors.Is(err, service.ErrNotFound) {
			apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Shared expense split", expenseID))
			return
		}
		logger.Ctx(c.Request.Context()).Error("failed to mark split paid", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, expense)
}
