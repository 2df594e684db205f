package api

import (
	"net/http"

	"expenses/service"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 消费类别（只读）
type CategoryHandler struct {
	svc *service.ExpenseService
}

// NewCategoryHandler 创建类别处理器
func NewCategoryHandler(svc *service.ExpenseService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// List 获取消费类别列表
// @Summary 获取消费类别列表
// @Description 返回全部类别，按名称升序
// @Tags 消费类别
// @Produce json
// @Success 200 {array} models.Category "类别列表"
// @Failure 500 {object} ErrorResponse "查询失败"
// @Router /api/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	list, err := h.svc.ListCategories(c.Request.Context())
	if err != nil {
		InternalError(c, err, "failed to load categories")
		return
	}
	c.JSON(http.StatusOK, list)
}
