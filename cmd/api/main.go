package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/lwhitworth8/ngi-ledger/internal/account"
	accountStore "github.com/lwhitworth8/ngi-ledger/internal/account/store"
	"github.com/lwhitworth8/ngi-ledger/internal/approval"
	approvalStore "github.com/lwhitworth8/ngi-ledger/internal/approval/store"
	"github.com/lwhitworth8/ngi-ledger/internal/config"
	"github.com/lwhitworth8/ngi-ledger/internal/database"
	"github.com/lwhitworth8/ngi-ledger/internal/entity"
	entityStore "github.com/lwhitworth8/ngi-ledger/internal/entity/store"
	"github.com/lwhitworth8/ngi-ledger/internal/entry"
	entryStore "github.com/lwhitworth8/ngi-ledger/internal/entry/store"
	ledgerHttp "github.com/lwhitworth8/ngi-ledger/internal/http"
	accountHandler "github.com/lwhitworth8/ngi-ledger/internal/http/account"
	entityHandler "github.com/lwhitworth8/ngi-ledger/internal/http/entity"
	entryHandler "github.com/lwhitworth8/ngi-ledger/internal/http/entry"
	reportHandler "github.com/lwhitworth8/ngi-ledger/internal/http/report"
	"github.com/lwhitworth8/ngi-ledger/internal/ledger"
	"github.com/lwhitworth8/ngi-ledger/internal/report"
	reportStore "github.com/lwhitworth8/ngi-ledger/internal/report/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	threshold, err := cfg.AutoApproveThreshold()
	if err != nil {
		slog.Error("invalid approval policy", "error", err)
		os.Exit(1)
	}

	policy := ledger.Policy{
		AutoApproveThreshold: threshold,
		CurrencyPrecision:    cfg.Policy.CurrencyPrecision,
	}

	db, err := database.New(cfg.ConnectionString(), database.Pool{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		entityService   = entity.NewService(entityStore.New(db))
		accountService  = account.NewService(accountStore.New(db))
		entryService    = entry.NewService(entryStore.New(db), policy)
		approvalService = approval.NewService(approvalStore.New(db), policy)
		reportService   = report.NewService(reportStore.New(db))
	)

	var (
		entityH  = entityHandler.NewHandler(entityService)
		accountH = accountHandler.NewHandler(accountService)
		entryH   = entryHandler.NewHandler(entryService, approvalService)
		reportH  = reportHandler.NewHandler(reportService)
	)

	router := ledgerHttp.New(entityH, accountH, entryH, reportH, cfg.Auth.JWTSecret)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
