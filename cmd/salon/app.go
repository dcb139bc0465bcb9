package main

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-SalonBooking/internal/config"
	appointmentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/catalog"
	paymentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/payment"
	shiftRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/shift"
	staffRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/staff"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/metrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/txmanager"
)

// app общие зависимости команд
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	db      *sql.DB
	metrics *metrics.Metrics

	appointments *appointmentRepo.Repository
	catalog      *catalogRepo.Repository
	payments     *paymentRepo.Repository
	shifts       *shiftRepo.Repository
	staff        *staffRepo.Repository
	txManager    *txmanager.TransactionManager

	stopMetricsCh chan struct{}
}

// newApp загружает конфигурацию, открывает БД и собирает репозитории
// withMetrics включает сбор метрик пула (нужен только серверу)
func newApp(path string, withMetrics bool) (*app, error) {
	// Загружаем конфигурацию
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	a := &app{cfg: cfg, log: log, stopMetricsCh: make(chan struct{})}

	if withMetrics && cfg.Metrics.Enabled {
		a.metrics = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		_ = log.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		_ = log.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	a.db = db

	// Без метрик обёртка ничего не пишет, но транзакции работают так же
	wrappedDB := dbmetrics.WrapWithDefault(db, a.metrics, a.stopMetricsCh)

	a.appointments = appointmentRepo.NewRepository(wrappedDB)
	a.catalog = catalogRepo.NewRepository(wrappedDB)
	a.payments = paymentRepo.NewRepository(wrappedDB)
	a.shifts = shiftRepo.NewRepository(wrappedDB)
	a.staff = staffRepo.NewRepository(wrappedDB)
	a.txManager = txmanager.NewTransactionManager(wrappedDB)

	return a, nil
}

// recorder доменные счетчики для use cases
type recorder interface {
	IncBooking(result string)
	AddShiftDecisions(decision string, count int)
}

// domainMetrics возвращает Prometheus метрики или заглушку, если они выключены
func (a *app) domainMetrics() recorder {
	if a.metrics == nil {
		return metrics.Nop{}
	}
	return a.metrics
}

func (a *app) Close() {
	close(a.stopMetricsCh)
	if a.db != nil {
		_ = a.db.Close()
	}
	_ = a.log.Close()
}
