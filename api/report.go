package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"expenses/service"

	"github.com/gin-gonic/gin"
)

// ReportMailer 发送月度报告
type ReportMailer interface {
	SendMonthlyReport(to string, period service.Period, breakdown service.Breakdown) error
}

// ReportHandler 月度报告处理器
type ReportHandler struct {
	svc    *service.ExpenseService
	mailer ReportMailer
}

// NewReportHandler 创建月度报告处理器
func NewReportHandler(svc *service.ExpenseService, mailer ReportMailer) *ReportHandler {
	return &ReportHandler{svc: svc, mailer: mailer}
}

// MonthlyReportRequest 月度报告请求
type MonthlyReportRequest struct {
	Year      int    `json:"year" binding:"required,min=1,max=9999" example:"2026"`
	Month     int    `json:"month" binding:"required,min=1,max=12" example:"2"`
	To        string `json:"to" binding:"required,email" example:"me@example.com"`
	DateField string `json:"date_field" example:"created_at"`
}

// MonthlyReportResponse 月度报告发送结果
type MonthlyReportResponse struct {
	Period string `json:"period" example:"2026-02"`
	To     string `json:"to" example:"me@example.com"`
	Count  int    `json:"count" example:"12"`
}

// SendMonthly 发送月度报告邮件
// @Summary 发送月度报告
// @Description 统计指定月份各类别的消费合计，并以 HTML 邮件发送到 to
// @Tags 报告
// @Accept json
// @Produce json
// @Param request body MonthlyReportRequest true "报告参数"
// @Success 200 {object} MonthlyReportResponse "发送成功"
// @Failure 400 {object} ErrorResponse "参数错误"
// @Failure 503 {object} ErrorResponse "邮件服务未启用"
// @Router /api/reports/monthly [post]
func (h *ReportHandler) SendMonthly(c *gin.Context) {
	var req MonthlyReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "year, month and a valid to address are required"))
		return
	}
	field, err := service.ParseDateField(req.DateField)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	period := service.Period{Year: req.Year, Month: time.Month(req.Month)}
	list, err := h.svc.List(c.Request.Context(), service.ListFilter{Period: &period, Field: field})
	if err != nil {
		InternalError(c, err, "failed to load expenses")
		return
	}

	breakdown := service.BuildBreakdown(list)
	if err := h.mailer.SendMonthlyReport(req.To, period, breakdown); err != nil {
		if errors.Is(err, service.ErrEmailDisabled) {
			Error(c, http.StatusServiceUnavailable, "email delivery is not configured")
			return
		}
		InternalError(c, err, "failed to send report")
		return
	}

	slog.InfoContext(c.Request.Context(), "月度报告已发送", "period", period.String(), "count", breakdown.Count, "request_id", c.GetString("request_id"))
	c.JSON(http.StatusOK, MonthlyReportResponse{Period: period.String(), To: req.To, Count: breakdown.Count})
}
