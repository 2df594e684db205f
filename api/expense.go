package api

import (
	"log/slog"
	"net/http"

	"expenses/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const expenseNotFound = "Expense not found"

// ExpenseHandler 消费记录处理器
type ExpenseHandler struct {
	svc *service.ExpenseService
}

// NewExpenseHandler 创建消费记录处理器
func NewExpenseHandler(svc *service.ExpenseService) *ExpenseHandler {
	registerValidators()
	return &ExpenseHandler{svc: svc}
}

// CreateExpenseRequest 创建消费记录请求
type CreateExpenseRequest struct {
	Description string           `json:"description" binding:"required,notblank,max=255" example:"Team Lunch"`
	Amount      *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number" example:"150.5"`
	CategoryID  uint             `json:"category_id" binding:"required" example:"1"`
	Date        string           `json:"date" binding:"required,notblank,expensedate" example:"2026-02-18"`
}

// UpdateExpenseRequest 更新消费记录请求，未提供的字段不修改
type UpdateExpenseRequest struct {
	Description *string          `json:"description" binding:"omitempty,notblank,max=255" example:"Team Lunch"`
	Amount      *decimal.Decimal `json:"amount" swaggertype:"number" example:"150.5"`
	CategoryID  *uint            `json:"category_id" example:"1"`
	Date        *string          `json:"date" binding:"omitempty,notblank,expensedate" example:"2026-02-18"`
}

// CreateExpenseBody 创建请求体，字段包在 expense 下
type CreateExpenseBody struct {
	Expense CreateExpenseRequest `json:"expense"`
}

// UpdateExpenseBody 更新请求体，字段包在 expense 下
type UpdateExpenseBody struct {
	Expense UpdateExpenseRequest `json:"expense"`
}

// listFilter 解析 year、month、date_field 查询参数
func listFilter(c *gin.Context) (service.ListFilter, error) {
	period, err := service.ParsePeriod(c.Query("year"), c.Query("month"))
	if err != nil {
		return service.ListFilter{}, err
	}
	field, err := service.ParseDateField(c.Query("date_field"))
	if err != nil {
		return service.ListFilter{}, err
	}
	return service.ListFilter{Period: period, Field: field}, nil
}

// List 获取消费记录列表
// @Summary 获取消费记录列表
// @Description 按 created_at 倒序返回消费记录。同时提供 year 和 month 时只返回该月入库的记录；date_field=date 时改为按消费日期筛选
// @Tags 消费记录
// @Produce json
// @Param year query int false "年份，如 2026"
// @Param month query int false "月份 1-12"
// @Param date_field query string false "筛选字段" Enums(created_at, date)
// @Success 200 {array} service.ExpenseView "消费记录列表"
// @Failure 400 {object} ErrorResponse "查询参数错误"
// @Router /api/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	filter, err := listFilter(c)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	list, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		InternalError(c, err, "failed to load expenses")
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get 获取单条消费记录
// @Summary 获取单条消费记录
// @Tags 消费记录
// @Produce json
// @Param id path int true "消费记录ID"
// @Success 200 {object} service.ExpenseView "消费记录"
// @Failure 404 {object} ErrorResponse "记录不存在"
// @Router /api/expenses/{id} [get]
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		NotFound(c, expenseNotFound)
		return
	}

	view, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, expenseNotFound, "failed to load expense")
		return
	}
	c.JSON(http.StatusOK, view)
}

// Create 创建消费记录
// @Summary 创建消费记录
// @Description 金额必须大于 0，描述不能为空，类别必须存在
// @Tags 消费记录
// @Accept json
// @Produce json
// @Param request body CreateExpenseBody true "消费记录信息"
// @Success 201 {object} service.ExpenseView "创建成功"
// @Failure 400 {object} ErrorResponse "请求体格式错误"
// @Failure 422 {object} ErrorResponse "字段校验失败"
// @Router /api/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if !bindExpense(c, &req) {
		return
	}
	date, err := service.ParseDate(req.Date, h.svc.Location())
	if err != nil {
		Unprocessable(c, []string{"Date is invalid"})
		return
	}

	view, err := h.svc.Create(c.Request.Context(), service.NewExpense{
		Description: req.Description,
		Amount:      *req.Amount,
		CategoryID:  req.CategoryID,
		Date:        date,
	})
	if err != nil {
		respondError(c, err, expenseNotFound, "failed to create expense")
		return
	}

	slog.InfoContext(c.Request.Context(), "消费记录已创建", "expense_id", view.ID, "request_id", c.GetString("request_id"))
	c.JSON(http.StatusCreated, view)
}

// Update 更新消费记录
// @Summary 更新消费记录
// @Description 只更新请求中提供的字段
// @Tags 消费记录
// @Accept json
// @Produce json
// @Param id path int true "消费记录ID"
// @Param request body UpdateExpenseBody true "需要更新的字段"
// @Success 200 {object} service.ExpenseView "更新成功"
// @Failure 400 {object} ErrorResponse "请求体格式错误"
// @Failure 404 {object} ErrorResponse "记录不存在"
// @Failure 422 {object} ErrorResponse "字段校验失败"
// @Router /api/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		NotFound(c, expenseNotFound)
		return
	}
	var req UpdateExpenseRequest
	if !bindExpense(c, &req) {
		return
	}
	changes := service.ExpenseChanges{
		Description: req.Description,
		Amount:      req.Amount,
		CategoryID:  req.CategoryID,
	}
	if req.Date != nil {
		date, err := service.ParseDate(*req.Date, h.svc.Location())
		if err != nil {
			Unprocessable(c, []string{"Date is invalid"})
			return
		}
		changes.Date = &date
	}

	view, err := h.svc.Update(c.Request.Context(), id, changes)
	if err != nil {
		respondError(c, err, expenseNotFound, "failed to update expense")
		return
	}
	c.JSON(http.StatusOK, view)
}

// Delete 删除消费记录
// @Summary 删除消费记录
// @Tags 消费记录
// @Param id path int true "消费记录ID"
// @Success 204 "删除成功"
// @Failure 404 {object} ErrorResponse "记录不存在"
// @Router /api/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		NotFound(c, expenseNotFound)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, expenseNotFound, "failed to delete expense")
		return
	}

	slog.InfoContext(c.Request.Context(), "消费记录已删除", "expense_id", id, "request_id", c.GetString("request_id"))
	c.Status(http.StatusNoContent)
}
