package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"expenses/clock"
	"expenses/database/dbtest"
	"expenses/models"
	"expenses/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupMockDB 使用 sqlmock 构建 MySQL 方言的 gorm 连接
func setupMockDB(t *testing.T) (sqlmock.Sqlmock, *service.ExpenseService, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	svc := service.NewExpenseService(gormDB, &clock.Fixed{T: dbtest.DefaultNow}, time.UTC)
	return mock, svc, func() {
		sqlDB.Close()
	}
}

type testEnv struct {
	db     *gorm.DB
	clock  *clock.Fixed
	svc    *service.ExpenseService
	mailer *fakeMailer
	router *gin.Engine
	food   models.Category
	trans  models.Category
}

// newTestEnv 内存 SQLite + 完整的 /api 路由
func newTestEnv(t *testing.T) *testEnv {
	db, clk := dbtest.Open(t)
	cats := dbtest.Categories(t, db, "Food", "Transport")
	svc := service.NewExpenseService(db, clk, time.UTC)
	mailer := &fakeMailer{}

	return &testEnv{
		db:     db,
		clock:  clk,
		svc:    svc,
		mailer: mailer,
		router: newRouter(svc, mailer),
		food:   cats[0],
		trans:  cats[1],
	}
}

func newRouter(svc *service.ExpenseService, mailer ReportMailer) *gin.Engine {
	r := gin.New()
	category := NewCategoryHandler(svc)
	expense := NewExpenseHandler(svc)
	export := NewExportHandler(svc)
	report := NewReportHandler(svc, mailer)

	r.GET("/api/categories", category.List)
	r.GET("/api/expenses", expense.List)
	r.POST("/api/expenses", expense.Create)
	r.GET("/api/expenses/summary", expense.Summary)
	r.GET("/api/expenses/export", export.Export)
	r.GET("/api/expenses/:id", expense.Get)
	r.PUT("/api/expenses/:id", expense.Update)
	r.PATCH("/api/expenses/:id", expense.Update)
	r.DELETE("/api/expenses/:id", expense.Delete)
	r.POST("/api/reports/monthly", report.SendMonthly)
	return r
}

// newMockRouter 基于 sqlmock 服务的路由
func newMockRouter(svc *service.ExpenseService) *gin.Engine {
	return newRouter(svc, &fakeMailer{})
}

func (e *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = new(bytes.Buffer)
	}
	req := httptest.NewRequest(method, path, buf)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

type fakeMailer struct {
	err       error
	to        string
	period    service.Period
	breakdown service.Breakdown
	calls     int
}

func (m *fakeMailer) SendMonthlyReport(to string, period service.Period, breakdown service.Breakdown) error {
	m.calls++
	m.to, m.period, m.breakdown = to, period, breakdown
	return m.err
}
