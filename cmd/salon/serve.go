package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	approvePendingHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/approve_pending_shifts"
	assignRecurringHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/assign_recurring_shifts"
	cancelBookingHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_available_slots"
	getAvailableStaffHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_available_staff"
	getBookingHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_booking"
	getStaffScheduleHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_staff_schedule"
	getUserBookingsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_user_bookings"
	reviewShiftHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/review_shift"
	submitShiftRequestHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/submit_shift_request"
	updateBookingStatusHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	appointmentsService "github.com/m04kA/SMC-SalonBooking/internal/service/appointments"
	"github.com/m04kA/SMC-SalonBooking/internal/service/scheduling"
	assignRecurringUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/assign_recurring_shifts"
	createBookingUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_available_slots"
	getAvailableStaffUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_available_staff"
	getStaffScheduleUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_staff_schedule"
	reviewShiftsUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/review_shifts"
	submitShiftRequestUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/submit_shift_request"
	"github.com/m04kA/SMC-SalonBooking/pkg/keylock"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP сервер",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(configPath, true)
			if err != nil {
				return err
			}
			defer a.Close()

			return runServer(a)
		},
	}
}

func runServer(a *app) error {
	cfg, log := a.cfg, a.log
	log.Info("Starting salon booking service...")

	location, err := cfg.Booking.Location()
	if err != nil {
		return fmt.Errorf("invalid booking timezone: %w", err)
	}
	hours := getAvailableSlotsUC.WorkingHours{
		Open:        types.MustTimeString(cfg.Booking.OpenTime),
		Close:       types.MustTimeString(cfg.Booking.CloseTime),
		StepMinutes: cfg.Booking.SlotStepMinutes,
	}

	// Инициализируем сервисы
	resolver := scheduling.NewResolver(a.staff, a.appointments, log)
	appointmentSvc := appointmentsService.NewService(
		a.appointments,
		a.payments,
		a.staff,
		a.txManager,
		appointmentsService.CancelPolicy{
			Notice:   time.Duration(cfg.Booking.CancelNoticeHours) * time.Hour,
			Location: location,
		},
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		a.catalog,
		a.appointments,
		a.payments,
		resolver,
		keylock.New(),
		a.txManager,
		a.domainMetrics(),
		location,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(a.catalog, resolver, hours, location, log)
	getAvailableStaffUseCase := getAvailableStaffUC.NewUseCase(a.catalog, resolver, log)
	submitShiftRequestUseCase := submitShiftRequestUC.NewUseCase(a.staff, a.shifts, a.txManager, location, log)
	reviewShiftsUseCase := reviewShiftsUC.NewUseCase(a.staff, a.catalog, a.shifts, a.txManager, a.domainMetrics(), log)
	assignRecurringUseCase := assignRecurringUC.NewUseCase(a.staff, a.catalog, a.shifts, a.txManager, a.domainMetrics(), log)
	getStaffScheduleUseCase := getStaffScheduleUC.NewUseCase(a.staff, a.shifts, location, log)

	// Инициализируем handlers
	getAvailableStaff := getAvailableStaffHandler.NewHandler(getAvailableStaffUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(appointmentSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(appointmentSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(appointmentSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(appointmentSvc, log)
	submitShiftRequest := submitShiftRequestHandler.NewHandler(submitShiftRequestUseCase, log)
	getStaffSchedule := getStaffScheduleHandler.NewHandler(getStaffScheduleUseCase, log)
	reviewShift := reviewShiftHandler.NewHandler(reviewShiftsUseCase, log)
	approvePending := approvePendingHandler.NewHandler(reviewShiftsUseCase, log)
	assignRecurring := assignRecurringHandler.NewHandler(assignRecurringUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if a.metrics != nil {
		r.Use(middleware.MetricsMiddleware(a.metrics))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/branches/{branchId}/available-staff", getAvailableStaff.Handle).Methods(http.MethodGet)
	api.HandleFunc("/branches/{branchId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{appointmentId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{appointmentId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{appointmentId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Смены мастеров ---
	protected.HandleFunc("/staff/shift-requests", submitShiftRequest.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/staff/{staffId}/schedule", getStaffSchedule.Handle).Methods(http.MethodGet)

	// --- Администратор ---
	protected.HandleFunc("/admin/shifts/approve-pending", approvePending.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/admin/shifts/recurring", assignRecurring.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/admin/shifts/{shiftId}/approve", reviewShift.Approve).Methods(http.MethodPost)
	protected.HandleFunc("/admin/shifts/{shiftId}/reject", reviewShift.Reject).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		return err
	}

	log.Info("Server stopped gracefully")
	return nil
}
