package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ogurasousui/hr-selfservice/internal/adapters/http/handler"
	"github.com/ogurasousui/hr-selfservice/internal/adapters/repository/postgres"
	"github.com/ogurasousui/hr-selfservice/internal/core/attendance"
	"github.com/ogurasousui/hr-selfservice/internal/core/auth"
	"github.com/ogurasousui/hr-selfservice/internal/core/employee"
	"github.com/ogurasousui/hr-selfservice/internal/core/task"
	"github.com/ogurasousui/hr-selfservice/internal/platform/config"
	pg "github.com/ogurasousui/hr-selfservice/internal/platform/db/postgres"
	"github.com/ogurasousui/hr-selfservice/internal/platform/server"
)

func main() {
	// .env はローカル開発用。存在しなくても問題ない。
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	dbPool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to initialize database pool: %v", err)
	}
	defer dbPool.Close()

	txManager := pg.NewTransactionManager(dbPool)

	accountRepo := postgres.NewAccountRepository(dbPool)
	employeeRepo := postgres.NewEmployeeRepository(dbPool)
	attendanceRepo := postgres.NewAttendanceRepository(dbPool)
	taskRepo := postgres.NewTaskRepository(dbPool)

	verifier := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, nil)
	authSvc := auth.NewService(accountRepo, verifier)
	employeeSvc := employee.NewService(employeeRepo)
	attendanceSvc := attendance.NewService(attendanceRepo, employeeSvc)
	taskSvc := task.NewService(taskRepo, employeeSvc, nil, txManager)

	router := handler.NewRouter(handler.RouterConfig{
		Verifier:   verifier,
		Auth:       handler.NewAuthHandler(authSvc),
		Profile:    handler.NewProfileHandler(employeeSvc),
		Attendance: handler.NewAttendanceHandler(attendanceSvc),
		Task:       handler.NewTaskHandler(taskSvc),
	})

	httpServer := server.New(cfg.Server.ListenAddr, router, cfg.Server.ShutdownTimeout)

	log.Printf("HTTP server listening on %s", cfg.Server.ListenAddr)

	if err := httpServer.Run(ctx); err != nil {
		log.Fatalf("server stopped with error: %v", err)
	}
}
