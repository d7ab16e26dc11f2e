package app

import (
	"context"
	"time"

	"github.com/LiquidSebabas/InnOutPG/internal/area"
	"github.com/LiquidSebabas/InnOutPG/internal/assignment"
	"github.com/LiquidSebabas/InnOutPG/internal/auth"
	"github.com/LiquidSebabas/InnOutPG/internal/auth/token"
	"github.com/LiquidSebabas/InnOutPG/internal/bootstrap"
	"github.com/LiquidSebabas/InnOutPG/internal/company"
	"github.com/LiquidSebabas/InnOutPG/internal/config"
	"github.com/LiquidSebabas/InnOutPG/internal/document"
	"github.com/LiquidSebabas/InnOutPG/internal/employee"
	"github.com/LiquidSebabas/InnOutPG/internal/messaging/kafka"
	"github.com/LiquidSebabas/InnOutPG/internal/middleware"
	"github.com/LiquidSebabas/InnOutPG/internal/rbac"
	"github.com/LiquidSebabas/InnOutPG/internal/rbac/infra"
	"github.com/LiquidSebabas/InnOutPG/internal/report"
	"github.com/LiquidSebabas/InnOutPG/internal/shift"
	"github.com/LiquidSebabas/InnOutPG/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func registerModules(router *gin.Engine, cfg *config.Config, in *Infra, audit bootstrap.AuditLogger) error {
	logger := zap.L()
	db, gormDB, rdb := in.SQLDB, in.GormDB, in.Redis

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	areaRepo := area.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	documentRepo := document.NewRepository(gormDB)
	shiftRepo := shift.NewRepository(gormDB)
	assignmentRepo := assignment.NewRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(cfg.RBACModelPath)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := rbacService.LoadPolicy(ctx); err != nil {
		return err
	}

	// --- Services ---
	consolidator := document.NewConsolidator(cfg.Location())
	tokens := token.NewManager(cfg.JWTSecret)

	authService := auth.NewService(userRepo, tokens, logger)
	userService := user.NewService(userRepo, logger)
	companyService := company.NewService(db, companyRepo, rdb, logger)
	areaService := area.NewService(db, areaRepo, companyRepo, rdb, logger)
	documentService := document.NewService(db, documentRepo, outboxRepo, rdb, consolidator, logger)
	employeeService := employee.NewService(db, employeeRepo, documentRepo, documentService, consolidator, outboxRepo, rdb, logger)
	shiftService := shift.NewService(shiftRepo, logger)
	assignmentService := assignment.NewService(
		db,
		assignmentRepo,
		shiftRepo,
		companyRepo,
		areaRepo,
		outboxRepo,
		assignment.Defaults{CompanyID: cfg.DefaultCompanyID, AreaID: cfg.DefaultAreaID},
		logger,
	)
	reportService := report.NewService(reportRepo, consolidator, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.IsProduction(), logger)
	userHandler := user.NewHandler(userService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)
	companyHandler := company.NewHandler(companyService, logger)
	areaHandler := area.NewHandler(areaService, logger)
	documentHandler := document.NewHandler(documentService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	shiftHandler := shift.NewHandler(shiftService, logger)
	assignmentHandler := assignment.NewHandler(assignmentService, rdb, logger).WithAudit(audit)
	reportHandler := report.NewHandler(reportService, logger)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	protected := api.Group("",
		middleware.AuthMiddleware(tokens),
		middleware.ExtractUserID(),
		middleware.ContextLogger(logger),
	)

	auth.RegisterRoutes(api, protected, authHandler)
	user.RegisterRoutes(protected, userHandler, rbacService)
	rbac.RegisterRoutes(protected, rbacHandler, rbacService)
	company.RegisterRoutes(protected, companyHandler, rbacService)
	area.RegisterRoutes(protected, areaHandler, rbacService)
	employee.RegisterRoutes(protected, employeeHandler, rbacService)
	document.RegisterRoutes(protected, documentHandler, rbacService)
	shift.RegisterRoutes(protected, shiftHandler, rbacService)
	assignment.RegisterRoutes(protected, assignmentHandler, rbacService, rdb)
	report.RegisterRoutes(protected, reportHandler, rbacService)

	router.GET("/healthz", healthCheck(in))

	return nil
}
