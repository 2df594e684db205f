package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"expenses/clock"
	"expenses/config"
	"expenses/database"
	"expenses/logger"
	"expenses/router"
	"expenses/service"

	"golang.org/x/sync/errgroup"
)

// @title 记账系统 API
// @version 1.0
// @description 个人消费记录 API，支持按月筛选、类别汇总和导出
// @host localhost:8080
// @BasePath /

const version = "v1.0.0"

var (
	configFile  string
	port        string
	showVersion bool
	seedDemo    bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 8080 或 :8080")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
	flag.BoolVar(&seedDemo, "seed-demo", false, "清空消费记录并生成演示数据后退出")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Println("记账系统", version)
		return
	}

	if err := run(); err != nil {
		slog.Error("服务异常退出", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 加载配置（内置配置 + 可选的外部配置覆盖）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("加载配置失败: %w", err)
	}
	logger.Init(cfg.Log)

	// 命令行参数覆盖端口配置
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		slog.Info("命令行指定端口", "port", port)
	}

	config.PrintConfig()

	loc, err := cfg.Server.Location()
	if err != nil {
		return err
	}
	clk := clock.System{Location: loc}

	// 初始化数据库
	if err := database.Init(cfg, clk); err != nil {
		return fmt.Errorf("数据库初始化失败: %w", err)
	}

	if seedDemo {
		return runSeed(cfg, clk)
	}

	svc := service.NewExpenseService(database.GetDB(), clk, loc)
	mailer := service.NewReportMailer(&cfg.Email)
	r := router.SetupRouter(cfg, svc, mailer)

	srv := &http.Server{
		Addr:              cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("记账系统已启动",
			"addr", cfg.Server.Port,
			"swagger", fmt.Sprintf("http://localhost%s/swagger/index.html", cfg.Server.Port),
			"api", fmt.Sprintf("http://localhost%s/api/expenses", cfg.Server.Port),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("服务器启动失败: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("收到退出信号，正在关闭服务")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("服务已停止")
	return nil
}

// runSeed 生成从 seed.demo_start 到今天的演示消费记录
func runSeed(cfg *config.Config, clk clock.Clock) error {
	start, err := cfg.Seed.DemoStartDate()
	if err != nil {
		return err
	}
	seed := uint64(clk.Now().UnixNano())
	n, err := database.SeedDemoExpenses(database.GetDB(), clk, start, rand.New(rand.NewPCG(seed, seed>>1)))
	if err != nil {
		return fmt.Errorf("生成演示数据失败: %w", err)
	}
	slog.Info("演示数据已生成", "count", n, "from", start.Format("2006-01-02"))
	return nil
}
