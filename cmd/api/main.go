package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/raminfosys/erp-backend-go/internal/config"
	appHTTP "github.com/raminfosys/erp-backend-go/internal/handler/http"
	"github.com/raminfosys/erp-backend-go/internal/pkg/cron"
	"github.com/raminfosys/erp-backend-go/internal/pkg/database"
	"github.com/raminfosys/erp-backend-go/internal/pkg/jwt"
	"github.com/raminfosys/erp-backend-go/internal/pkg/sse"
	"github.com/raminfosys/erp-backend-go/internal/pkg/storage"
	"github.com/raminfosys/erp-backend-go/internal/repository/kv"
	"github.com/raminfosys/erp-backend-go/internal/repository/postgresql"
	announcementService "github.com/raminfosys/erp-backend-go/internal/service/announcement"
	attendanceService "github.com/raminfosys/erp-backend-go/internal/service/attendance"
	authService "github.com/raminfosys/erp-backend-go/internal/service/auth"
	"github.com/raminfosys/erp-backend-go/internal/service/changefeed"
	leaveService "github.com/raminfosys/erp-backend-go/internal/service/leave"
	projectService "github.com/raminfosys/erp-backend-go/internal/service/project"
	reportService "github.com/raminfosys/erp-backend-go/internal/service/report"
	taskService "github.com/raminfosys/erp-backend-go/internal/service/task"
	userService "github.com/raminfosys/erp-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := appHTTP.NewLogger(cfg.App)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := sse.NewHub()

	var slotStorage storage.SlotStorage
	var broadcaster storage.Broadcaster
	switch cfg.Store.Type {
	case config.StoreTypeLocal:
		slotStorage, err = storage.NewLocalStorage(cfg.Store.BasePath)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	case config.StoreTypeMemory:
		slotStorage = storage.NewMemoryStorage()
	case config.StoreTypePostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Error connecting to database:", err)
		}
		defer db.Close()

		slotRepo, err := postgresql.NewSlotRepository(ctx, db, cfg.Database.NotifyChannel, uuid.Must(uuid.NewV7()).String())
		if err != nil {
			log.Fatal("Failed to initialize slot repository:", err)
		}
		slotStorage = slotRepo
		broadcaster = slotRepo
	}

	store := kv.NewStore(slotStorage, hub, kv.NewKeys(cfg.Store.KeyPrefix))

	userRepo := kv.NewUserRepository(store)
	projectRepo := kv.NewProjectRepository(store)
	taskRepo := kv.NewTaskRepository(store)
	leaveRepo := kv.NewLeaveRepository(store)
	attendanceRepo := kv.NewAttendanceRepository(store)
	announcementRepo := kv.NewAnnouncementRepository(store)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	changefeedService := changefeed.NewService(store, hub)

	handlers := appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(JWTService, authService.NewAuthService(userRepo, JWTService)),
		User:         appHTTP.NewUserHandler(userService.NewUserService(userRepo)),
		Project:      appHTTP.NewProjectHandler(projectService.NewProjectService(projectRepo)),
		Task:         appHTTP.NewTaskHandler(taskService.NewTaskService(taskRepo)),
		Leave:        appHTTP.NewLeaveHandler(leaveService.NewLeaveService(leaveRepo, userRepo)),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceService.NewAttendanceService(attendanceRepo, userRepo), reportService.NewReportService(attendanceRepo, userRepo, cfg.Report.FilePrefix)),
		Announcement: appHTTP.NewAnnouncementHandler(announcementService.NewAnnouncementService(announcementRepo)),
		Snapshot:     appHTTP.NewSnapshotHandler(changefeedService),
		Events:       appHTTP.NewEventsHandler(changefeedService),
	}

	// Writes from other processes reach the hub through NOTIFY on postgres
	// and through fingerprint polling everywhere else
	scheduler := cron.NewScheduler(ctx)
	if broadcaster != nil {
		go func() {
			if err := changefeedService.Relay(ctx, broadcaster); err != nil {
				slog.Error("Change relay stopped", "error", err)
			}
		}()
	} else {
		scheduler.AddJob("store-change-poll", cfg.Sync.PollInterval, changefeedService.Poll)
	}
	// Record the poll baseline before serving so the first tick compares against it
	scheduler.RunOnce(ctx)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(logger, cfg.App.CORSAllowedOrigins, JWTService, handlers)

	server := newServer(ctx, cfg.App.Port, router)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown failed", "error", err)
		}
	}()

	slog.Info("Server listening", "port", cfg.App.Port, "store", cfg.Store.Type)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server stopped", "error", err)
	}
}

// newServer derives every request context from ctx, so open event streams
// end as soon as shutdown starts.
func newServer(ctx context.Context, port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: handler,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
}
