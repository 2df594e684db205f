package router

import (
	"log/slog"
	"net/http"

	"expenses/api"
	"expenses/config"
	_ "expenses/docs"
	"expenses/middleware"
	"expenses/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, svc *service.ExpenseService, mailer api.ReportMailer) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(slog.Default()))

	// CORS 中间件
	r.Use(CORSMiddleware(cfg.Server.CORSOrigin))

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	categoryHandler := api.NewCategoryHandler(svc)
	expenseHandler := api.NewExpenseHandler(svc)
	exportHandler := api.NewExportHandler(svc)
	reportHandler := api.NewReportHandler(svc, mailer)

	apiGroup := r.Group("/api")
	apiGroup.Use(middleware.WriteRateLimit(cfg.Server.WriteLimit, cfg.Server.WriteWindow))
	{
		apiGroup.GET("/categories", categoryHandler.List)

		expenses := apiGroup.Group("/expenses")
		{
			expenses.GET("", expenseHandler.List)
			expenses.POST("", expenseHandler.Create)
			expenses.GET("/summary", expenseHandler.Summary)
			expenses.GET("/export", exportHandler.Export)
			expenses.GET("/:id", expenseHandler.Get)
			expenses.PUT("/:id", expenseHandler.Update)
			expenses.PATCH("/:id", expenseHandler.Update)
			expenses.DELETE("/:id", expenseHandler.Delete)
		}

		apiGroup.POST("/reports/monthly", reportHandler.SendMonthly)
	}

	// 未匹配的路由统一返回 JSON
	r.NoRoute(func(c *gin.Context) {
		api.NotFound(c, "Not found")
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware(origin string) gin.HandlerFunc {
	if origin == "" {
		origin = "*"
	}
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
