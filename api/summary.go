package api

import (
	"net/http"

	"expenses/service"

	"github.com/gin-gonic/gin"
)

// Summary 按类别汇总
// @Summary 按类别汇总消费
// @Description 对与列表接口相同的筛选结果按类别求和计数，按合计金额降序
// @Tags 消费记录
// @Produce json
// @Param year query int false "年份"
// @Param month query int false "月份 1-12"
// @Param date_field query string false "筛选字段" Enums(created_at, date)
// @Success 200 {object} service.Breakdown "汇总结果"
// @Failure 400 {object} ErrorResponse "查询参数错误"
// @Router /api/expenses/summary [get]
func (h *ExpenseHandler) Summary(c *gin.Context) {
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
	c.JSON(http.StatusOK, service.BuildBreakdown(list))
}
