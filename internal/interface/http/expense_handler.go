package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/spendario/spendario-api/internal/application"
	"github.com/spendario/spendario-api/internal/domain/entity"
	"github.com/spendario/spendario-api/internal/interface/middleware"
	"github.com/spendario/spendario-api/pkg/response"
	"github.com/spendario/spendario-api/pkg/validation"
)

const dateLayout = "2006-01-02"

type ExpenseHandler struct {
	Svc    *application.ExpenseService
	Logger *logrus.Logger
}

func NewExpenseHandler(svc *application.ExpenseService, logger *logrus.Logger) *ExpenseHandler {
	return &ExpenseHandler{Svc: svc, Logger: logger}
}

// expenseRequest is shared by create and update; update is a full replace of
// the mutable fields. Amount binds through shopspring decimal and is checked
// by hand below since validator tags cannot inspect it.
type expenseRequest struct {
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency" binding:"required,len=3,alpha"`
	Description     string          `json:"description" binding:"required,min=1,max=255"`
	TransactionDate string          `json:"transaction_date" binding:"required,datetime=2006-01-02"`
	CategoryID      int             `json:"category_id" binding:"required,gt=0"`
}

const amountMaxDigits = 12

func (r *expenseRequest) toInput() (application.ExpenseInput, map[string]string) {
	details := map[string]string{}
	switch {
	case !r.Amount.IsPositive():
		details["amount"] = "must be greater than 0"
	case r.Amount.Exponent() < -2:
		details["amount"] = "must have at most 2 decimal places"
	case r.Amount.NumDigits() > amountMaxDigits:
		details["amount"] = "must have at most 12 digits"
	}
	date, err := time.Parse(dateLayout, r.TransactionDate)
	if err != nil {
		details["transaction_date"] = "must match datetime format: " + dateLayout
	}
	if len(details) > 0 {
		return application.ExpenseInput{}, details
	}
	return application.ExpenseInput{
		CategoryID:      r.CategoryID,
		Amount:          r.Amount,
		Currency:        r.Currency,
		Description:     r.Description,
		TransactionDate: date,
	}, nil
}

type listQuery struct {
	Page     int `form:"page,default=1" binding:"omitempty,gte=1"`
	PageSize int `form:"page_size,default=50" binding:"omitempty,gte=1,lte=100"`
}

func expenseJSON(e *entity.Expense) gin.H {
	return gin.H{
		"id":               e.ID,
		"user_id":          e.UserID,
		"category_id":      e.CategoryID,
		"amount":           e.Amount,
		"currency":         e.Currency,
		"description":      e.Description,
		"transaction_date": e.TransactionDate.Format(dateLayout),
		"created_at":       e.CreatedAt,
	}
}

func (h *ExpenseHandler) writeExpenseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrExpenseNotFound):
		response.Error[any](c, http.StatusNotFound, "expense not found", nil)
	case errors.Is(err, application.ErrCategoryNotFound):
		response.Error[any](c, http.StatusNotFound, "category not found", nil)
	default:
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
	}
}

// Create POST /expenses
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	in, details := req.toInput()
	if details != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", details)
		return
	}

	e, err := h.Svc.Create(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), in)
	if err != nil {
		h.writeExpenseError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, expenseJSON(e), "expense created", nil)
}

// List GET /expenses
func (h *ExpenseHandler) List(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid query", validation.ToDetails(err))
		return
	}

	items, total, err := h.Svc.List(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), q.Page, q.PageSize)
	if err != nil {
		h.writeExpenseError(c, err)
		return
	}

	out := make([]gin.H, 0, len(items))
	for i := range items {
		out = append(out, expenseJSON(&items[i]))
	}
	response.Success(c, http.StatusOK, out, "expenses", response.Pagination{
		Total:    total,
		Page:     q.Page,
		PageSize: q.PageSize,
	})
}

// Get GET /expenses/:id
func (h *ExpenseHandler) Get(c *gin.Context) {
	e, err := h.Svc.Get(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), c.Param("id"))
	if err != nil {
		h.writeExpenseError(c, err)
		return
	}
	response.Success(c, http.StatusOK, expenseJSON(e), "expense", nil)
}

// Update PUT /expenses/:id
func (h *ExpenseHandler) Update(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	in, details := req.toInput()
	if details != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", details)
		return
	}

	e, err := h.Svc.Update(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), c.Param("id"), in)
	if err != nil {
		h.writeExpenseError(c, err)
		return
	}
	response.Success(c, http.StatusOK, expenseJSON(e), "expense updated", nil)
}

// Delete DELETE /expenses/:id
func (h *ExpenseHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), c.Param("id")); err != nil {
		h.writeExpenseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListCategories GET /categories
func (h *ExpenseHandler) ListCategories(c *gin.Context) {
	cats, err := h.Svc.ListCategories(c.Request.Context())
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	out := make([]gin.H, 0, len(cats))
	for _, cat := range cats {
		out = append(out, gin.H{
			"id":         cat.ID,
			"name":       cat.Name,
			"slug":       cat.Slug,
			"created_at": cat.CreatedAt,
		})
	}
	response.Success(c, http.StatusOK, out, "categories", nil)
}
