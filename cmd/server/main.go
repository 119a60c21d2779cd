package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"cropadvisor/config"
	"cropadvisor/database"
	"cropadvisor/router"

	"cropadvisor/pkg/agronomy"
	"cropadvisor/pkg/ai"
	"cropadvisor/pkg/logger"
	"cropadvisor/pkg/middleware"

	adviceCtrlImp "cropadvisor/pkg/advice/controllerImp"
	adviceRepoImp "cropadvisor/pkg/advice/repositoryImp"

	farmerCtrlImp "cropadvisor/pkg/farmer/controllerImp"
	farmerRepoImp "cropadvisor/pkg/farmer/repositoryImp"

	calCtrlImp "cropadvisor/pkg/calendar/controllerImp"
	calRepoImp "cropadvisor/pkg/calendar/repositoryImp"
	calSvcImp "cropadvisor/pkg/calendar/serviceImp"

	mktCtrlImp "cropadvisor/pkg/market/controllerImp"
	mktRepoImp "cropadvisor/pkg/market/repositoryImp"
	mktSvcImp "cropadvisor/pkg/market/serviceImp"

	recCtrlImp "cropadvisor/pkg/recommend/controllerImp"
	recSvcImp "cropadvisor/pkg/recommend/serviceImp"

	healthCtrlImp "cropadvisor/pkg/health/controllerImp"
)

func main() {
	// 1) Config + logger
	cfg := config.Load()
	logg, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logg.Sync()

	// 2) Document store
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	st, err := database.Open(ctx, cfg, logg)
	cancel()
	if err != nil {
		logg.Fatal("open store", "error", err)
	}

	// 3) Crop table (optional workbook override) + generator
	table := agronomy.DefaultTable()
	if cfg.CropTableXLSX != "" {
		table, err = agronomy.LoadXLSX(cfg.CropTableXLSX)
		if err != nil {
			logg.Fatal("load crop table", "path", cfg.CropTableXLSX, "error", err)
		}
		logg.Info("crop table loaded from workbook", "path", cfg.CropTableXLSX, "crops", len(table.Crops()))
	}
	gen := agronomy.NewGenerator(table, rand.New(rand.NewSource(time.Now().UnixNano())))

	// 4) LLM gateway. The key is checked per call; a missing key surfaces as
	// a configuration error on the advisory endpoints, not at startup.
	llm := ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)

	// 5) Repos / services / controllers
	adviceRepo := adviceRepoImp.New(st)
	farmerRepo := farmerRepoImp.New(st)
	calRepo := calRepoImp.New(st)
	mktRepo := mktRepoImp.New(st)

	calSvc := calSvcImp.New(gen, calRepo, farmerRepo)
	mktSvc := mktSvcImp.New(gen, mktRepo, farmerRepo)
	recSvc := recSvcImp.New(gen, llm, farmerRepo)

	adviceCtrl := adviceCtrlImp.New(llm, adviceRepo, logg)
	farmerCtrl := farmerCtrlImp.New(farmerRepo, logg)
	calCtrl := calCtrlImp.New(calSvc, logg)
	mktCtrl := mktCtrlImp.New(mktSvc, logg)
	recCtrl := recCtrlImp.New(recSvc, logg)
	healthCtrl := healthCtrlImp.New(st)

	// 6) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: strings.Split(cfg.CORSOrigins, ","),
	}))
	e.Use(middleware.RequestLog(logg))

	router.New(e, healthCtrl, adviceCtrl, farmerCtrl, calCtrl, mktCtrl, recCtrl)

	// 7) Serve until signalled, then release the store handle.
	go func() {
		logg.Info("listening", "port", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logg.Fatal("server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logg.Error("shutdown", "error", err)
	}
	if err := st.Close(shutdownCtx); err != nil {
		logg.Error("close store", "error", err)
	}
}
