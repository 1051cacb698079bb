package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"farmhub/config"
	"farmhub/database"
	"farmhub/entities"
	"farmhub/pkg/logging"
	"farmhub/pkg/middleware"
	"farmhub/pkg/notify"
	"farmhub/router"

	authCtrlImp "farmhub/pkg/auth/controllerImp"
	authRepoImp "farmhub/pkg/auth/repositoryImp"
	authSvcImp "farmhub/pkg/auth/serviceImp"

	cropCtrlImp "farmhub/pkg/crop/controllerImp"
	cropRepoImp "farmhub/pkg/crop/repositoryImp"
	cropSvcImp "farmhub/pkg/crop/serviceImp"

	customerCtrlImp "farmhub/pkg/customer/controllerImp"
	customerRepoImp "farmhub/pkg/customer/repositoryImp"
	customerSvcImp "farmhub/pkg/customer/serviceImp"

	ghCtrlImp "farmhub/pkg/greenhouse/controllerImp"
	ghRepoImp "farmhub/pkg/greenhouse/repositoryImp"
	ghService "farmhub/pkg/greenhouse/service"
	ghSvcImp "farmhub/pkg/greenhouse/serviceImp"

	orderCtrlImp "farmhub/pkg/order/controllerImp"
	orderRepoImp "farmhub/pkg/order/repositoryImp"
	orderSvcImp "farmhub/pkg/order/serviceImp"

	reportCtrlImp "farmhub/pkg/report/controllerImp"
	reportRepoImp "farmhub/pkg/report/repositoryImp"
	reportSvcImp "farmhub/pkg/report/serviceImp"

	varietyCtrlImp "farmhub/pkg/variety/controllerImp"
	varietyRepoImp "farmhub/pkg/variety/repositoryImp"
	varietyService "farmhub/pkg/variety/service"
	varietySvcImp "farmhub/pkg/variety/serviceImp"

	healthCtrlImp "farmhub/pkg/health/controllerImp"
)

var version = "dev"

func main() {
	// 1) Config + logging
	cfg := config.Load()
	logging.Setup(cfg.LogLevel, cfg.LogFormat)
	loc := cfg.Location()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2) DB + migrations
	db, err := database.Open(cfg)
	if err != nil {
		logging.Component("main").Fatalf("database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logging.Component("main").Fatalf("database handle: %v", err)
	}
	defer sqlDB.Close()

	// 3) Notifications
	notifier := notify.FromConfig(ctx, cfg)
	admin := notify.Recipient{Name: "Farm admin", Email: cfg.AdminNotifyEmail}
	if p, ok := entities.NormalizePhone(cfg.AdminNotifyPhone); ok {
		admin.Phone = p
	}

	// 4) Services
	ghSvc := ghSvcImp.NewGreenhouseService(ghRepoImp.New(db), loc)
	varietySvc := varietySvcImp.NewVarietyService(varietyRepoImp.New(db))
	cropSvc := cropSvcImp.NewCropService(cropRepoImp.New(db), loc)
	customerSvc := customerSvcImp.NewCustomerService(customerRepoImp.New(db))
	orderSvc := orderSvcImp.NewOrderService(orderRepoImp.New(db), notifier, admin, loc)
	reportSvc := reportSvcImp.NewReportService(reportRepoImp.New(db), orderSvc, loc)
	authSvc := authSvcImp.NewAuthService(authRepoImp.New(db), cfg.SessionTTL)

	seed(cfg, ghSvc, varietySvc)
	if cfg.AdminUsername != "" {
		if _, err := authSvc.EnsureAdmin(cfg.AdminUsername, cfg.AdminPassword); err != nil {
			logging.Component("main").Fatalf("bootstrap admin: %v", err)
		}
	}

	limit, err := middleware.RateLimit(cfg.PublicRateLimit)
	if err != nil {
		logging.Component("main").Fatalf("PUBLIC_RATE_LIMIT %q: %v", cfg.PublicRateLimit, err)
	}

	// 5) Echo + routes
	e := echo.New()
	e.HideBanner = true
	router.New(e, router.Handlers{
		Greenhouse:  ghCtrlImp.New(ghSvc),
		Variety:     varietyCtrlImp.New(varietySvc),
		Crop:        cropCtrlImp.New(cropSvc),
		Customer:    customerCtrlImp.New(customerSvc),
		Order:       orderCtrlImp.New(orderSvc),
		Report:      reportCtrlImp.New(reportSvc),
		Auth:        authCtrlImp.New(authSvc),
		Health:      healthCtrlImp.NewHealthCtrl(sqlDB, version),
		Sessions:    authSvc,
		PublicLimit: limit,
		CORSOrigins: cfg.CORSOrigins,
	})

	// 6) Start + graceful shutdown
	go func() {
		logging.Component("main").Infof("listening on :%s", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Component("main").Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	logging.Component("main").Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logging.Component("main").WithError(err).Warn("shutdown")
	}
	notifier.Wait()
}

// seed loads the variety catalog and the first greenhouse when configured.
// Failures are logged; the server still starts.
func seed(cfg config.AppConfig, gh ghService.GreenhouseService, vs varietyService.VarietyService) {
	entry := logging.Component("seed")
	if cfg.SeedVarieties != "" {
		res, err := vs.ImportFile(cfg.SeedVarieties)
		if err != nil {
			entry.WithError(err).Warnf("import %s", cfg.SeedVarieties)
		} else {
			entry.Infof("varieties: %d created, %d updated, %d skipped", res.Created, res.Updated, res.Skipped)
			for _, e := range res.Errors {
				entry.Warn(e)
			}
		}
	}
	if cfg.SeedGreenhouse != "" {
		g, created, err := gh.EnsureGreenhouse(cfg.SeedGreenhouse, cfg.SeedBedsPerSide)
		switch {
		case err != nil:
			entry.WithError(err).Warnf("greenhouse %s", cfg.SeedGreenhouse)
		case created:
			entry.Infof("greenhouse %s created with %d beds per side", g.Name, cfg.SeedBedsPerSide)
		}
	}
}
