package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campushq/attendance-insights/internal/config"
	appHTTP "github.com/campushq/attendance-insights/internal/handler/http"
	"github.com/campushq/attendance-insights/internal/pkg/poll"
	"github.com/campushq/attendance-insights/internal/pkg/snapshot"
	"github.com/campushq/attendance-insights/internal/pkg/sse"
	"github.com/campushq/attendance-insights/internal/pkg/timer"
	attendanceService "github.com/campushq/attendance-insights/internal/service/attendance"
	dashboardService "github.com/campushq/attendance-insights/internal/service/dashboard"
	reportService "github.com/campushq/attendance-insights/internal/service/report"
	"github.com/campushq/attendance-insights/internal/upstream"

	domainAttendance "github.com/campushq/attendance-insights/internal/domain/attendance"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	backend := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Token, cfg.Upstream.Timeout)
	store := snapshot.NewStore()
	hub := sse.NewHub()
	tracker := timer.NewTracker(cfg.Refresh.LiveInterval)

	attendanceSvc := attendanceService.NewAttendanceService(store, backend, tracker, hub, cfg.Scope)
	dashboardSvc := dashboardService.NewDashboardService(store)
	reportSvc := reportService.NewReportService(store)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	eventsHandler := appHTTP.NewEventsHandler(hub)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		attendanceHandler,
		dashboardHandler,
		reportHandler,
		eventsHandler,
	)

	// Background refresh replaces the snapshot without touching any
	// caller-held filter; the first run also warms the store on startup.
	runner := poll.NewRunner()
	refreshTask := runner.Schedule("refresh_snapshot", cfg.Refresh.Interval, func(ctx context.Context) error {
		return attendanceSvc.Refresh(ctx, domainAttendance.RefreshRequest{})
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		fmt.Println("Server error:", err)
	case sig := <-sigCh:
		fmt.Println("Received signal:", sig)
	}

	refreshTask.Cancel()
	runner.Stop()
	attendanceSvc.Close()
	tracker.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Server shutdown error:", err)
	}
}
