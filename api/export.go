package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"expenses/service"

	"github.com/gin-gonic/gin"
)

const (
	csvContentType  = "text/csv; charset=utf-8"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportHandler 导出处理器
type ExportHandler struct {
	svc *service.ExpenseService
}

// NewExportHandler 创建导出处理器
func NewExportHandler(svc *service.ExpenseService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// Export 导出消费记录
// @Summary 导出消费记录
// @Description 导出与列表接口相同筛选结果的消费记录，支持 CSV 和 Excel
// @Tags 导出
// @Produce octet-stream
// @Param format query string false "导出格式" Enums(csv, xlsx) default(csv)
// @Param year query int false "年份"
// @Param month query int false "月份 1-12"
// @Param date_field query string false "筛选字段" Enums(created_at, date)
// @Success 200 {file} file "导出文件"
// @Failure 400 {object} ErrorResponse "参数错误"
// @Router /api/expenses/export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	format := strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", "csv")))
	if format != "csv" && format != "xlsx" {
		BadRequest(c, "format must be csv or xlsx")
		return
	}

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

	buf := new(bytes.Buffer)
	contentType := csvContentType
	if format == "xlsx" {
		contentType = xlsxContentType
		err = service.WriteXLSX(buf, list, service.BuildBreakdown(list))
	} else {
		err = service.WriteCSV(buf, list)
	}
	if err != nil {
		InternalError(c, err, "failed to export expenses")
		return
	}

	filename := exportFilename(filter, format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// exportFilename expenses_2026-02.csv，未按月筛选时为 expenses_all.csv
func exportFilename(f service.ListFilter, format string) string {
	suffix := "all"
	if f.Period != nil {
		suffix = f.Period.String()
	}
	return fmt.Sprintf("expenses_%s.%s", suffix, format)
}
