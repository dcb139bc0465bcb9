package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SalonBooking/internal/service/scheduling"
	"github.com/m04kA/SMC-SalonBooking/pkg/txmanager"
)

// Результаты бронирования для метрик
const (
	resultCreated   = "created"
	resultNoStaff   = "no_staff"
	resultSlotTaken = "slot_taken"
	resultRejected  = "rejected"
	resultError     = "error"
)

// UseCase use case для создания записи с автоматическим назначением мастера
type UseCase struct {
	catalogRepo     CatalogRepository
	appointmentRepo AppointmentRepository
	paymentRepo     PaymentRepository
	resolver        AvailabilityResolver
	locker          SlotLocker
	txManager       TransactionManager
	metrics         Metrics
	timeProvider    TimeProvider
	location        *time.Location
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogRepo CatalogRepository,
	appointmentRepo AppointmentRepository,
	paymentRepo PaymentRepository,
	resolver AvailabilityResolver,
	locker SlotLocker,
	txManager TransactionManager,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.Local
	}

	return &UseCase{
		catalogRepo:     catalogRepo,
		appointmentRepo: appointmentRepo,
		paymentRepo:     paymentRepo,
		resolver:        resolver,
		locker:          locker,
		txManager:       txManager,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		location:        location,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Подбор мастера и создание записи идут в одной сериализуемой транзакции под блокировкой слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, service=%d, branch=%d, date=%s, time=%s",
		req.CustomerID, req.ServiceID, req.BranchID, req.Date.Format(domain.DateFormat), req.StartTime)

	resp, err := uc.execute(ctx, req)
	uc.metrics.IncBooking(resultLabel(err))

	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Услуга должна существовать и быть активной
	service, err := uc.getActiveService(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	// 3. Филиал, дата и время обязательны
	if err := validateSlotFields(req); err != nil {
		uc.logger.Warn("CreateBooking: incomplete request: %v", err)
		return nil, err
	}

	method, err := resolvePaymentMethod(req.PaymentMethod)
	if err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	// 4. Нельзя записаться в прошлое (дата и время салона)
	if err := validateNotInPast(req.Date, req.StartTime, uc.timeProvider.Now().In(uc.location)); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	// 5. Филиал должен существовать
	if _, err := uc.catalogRepo.GetBranch(ctx, req.BranchID); err != nil {
		if errors.Is(err, catalogRepo.ErrBranchNotFound) {
			uc.logger.Warn("CreateBooking: branch id=%d not found", req.BranchID)
			return nil, ErrBranchNotFound
		}
		uc.logger.Error("CreateBooking: failed to get branch id=%d: %v", req.BranchID, err)
		return nil, fmt.Errorf("%w: failed to get branch: %v", ErrInternal, err)
	}

	// 6. Внутри процесса запросы на один слот встают в очередь
	bucket := domain.ClassifyShift(req.StartTime)
	unlock := uc.locker.Lock(domain.SlotLockKey(req.BranchID, req.Date, bucket))
	defer unlock()

	// 7. Подбор мастера и запись в БД; при конфликте сериализации - один повтор
	result, err := uc.book(ctx, req, service, bucket, method)
	if errors.Is(err, txmanager.ErrSerialization) {
		uc.logger.Warn("CreateBooking: serialization conflict, retrying once: %v", err)
		result, err = uc.book(ctx, req, service, bucket, method)
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("CreateBooking: slot taken concurrently: %v", err)
			return nil, ErrSlotJustTaken
		}
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created appointment id=%d (%s), staff=%d",
		result.AppointmentID, result.BookingCode, result.StaffID)

	return result, nil
}

// book одна попытка: resolve + select + insert в одной транзакции
func (uc *UseCase) book(
	ctx context.Context,
	req *Request,
	service *domain.Service,
	bucket domain.ShiftBucket,
	method domain.PaymentMethod,
) (*Response, error) {
	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Блокировка слота в БД до конца транзакции
		if err := uc.appointmentRepo.LockSlot(txCtx, req.BranchID, req.Date, bucket); err != nil {
			uc.logger.Error("CreateBooking: failed to lock slot: %v", err)
			return fmt.Errorf("%w: failed to lock slot: %w", ErrInternal, err)
		}

		// 7.2. Свободные мастера
		candidates, err := uc.resolver.ResolveAvailability(txCtx, req.BranchID, req.Date, req.StartTime, service.Duration())
		if err != nil {
			uc.logger.Error("CreateBooking: failed to resolve availability: %v", err)
			return fmt.Errorf("%w: failed to resolve availability: %w", ErrInternal, err)
		}

		// 7.3. Наименее загруженный мастер
		chosen, err := scheduling.SelectAssignee(candidates)
		if err != nil {
			uc.logger.Warn("CreateBooking: no staff available at branch=%d %s %s",
				req.BranchID, req.Date.Format(domain.DateFormat), req.StartTime)
			return ErrNoStaffAvailable
		}

		uc.logger.Info("CreateBooking: %d candidate(s), chosen staff=%d with day load %d min",
			len(candidates), chosen.StaffID, chosen.DayLoad)

		// 7.4. Запись
		appt, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			CustomerID:      req.CustomerID,
			BranchID:        req.BranchID,
			Date:            domain.DateOnly(req.Date),
			StartTime:       req.StartTime,
			DurationMinutes: service.Duration(),
			Status:          domain.StatusPending,
			TotalPrice:      service.Price,
			Note:            req.Note,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}

		// 7.5. Строка услуги, цена фиксируется на момент записи
		line := &domain.ServiceLine{
			AppointmentID: appt.ID,
			ServiceID:     service.ID,
			Quantity:      1,
			UnitPrice:     service.Price,
		}
		if err := uc.appointmentRepo.AddServiceLine(txCtx, line); err != nil {
			uc.logger.Error("CreateBooking: failed to add service line: %v", err)
			return fmt.Errorf("%w: failed to add service line: %w", ErrInternal, err)
		}

		// 7.6. Назначение мастера
		staffLine := &domain.StaffLine{AppointmentID: appt.ID, StaffID: chosen.StaffID}
		if err := uc.appointmentRepo.AddStaffLine(txCtx, staffLine); err != nil {
			uc.logger.Error("CreateBooking: failed to add staff line: %v", err)
			return fmt.Errorf("%w: failed to add staff line: %w", ErrInternal, err)
		}

		// 7.7. Пересчет итоговой суммы по строкам
		total, err := uc.appointmentRepo.RecalcTotal(txCtx, appt.ID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to recalc total: %v", err)
			return fmt.Errorf("%w: failed to recalc total: %w", ErrInternal, err)
		}
		appt.TotalPrice = total

		// 7.8. Заготовка платежа
		payment, err := uc.paymentRepo.Create(txCtx, &domain.Payment{
			AppointmentID: appt.ID,
			Amount:        total,
			Method:        method,
			Status:        domain.PaymentUnpaid,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create payment: %v", err)
			return fmt.Errorf("%w: failed to create payment: %w", ErrInternal, err)
		}

		result = toResponse(appt, service.ID, chosen.StaffID, payment)
		return nil
	})

	return result, err
}

func (uc *UseCase) getActiveService(ctx context.Context, serviceID int64) (*domain.Service, error) {
	if serviceID <= 0 {
		uc.logger.Warn("CreateBooking: service is not selected")
		return nil, ErrInvalidService
	}

	service, err := uc.catalogRepo.GetService(ctx, serviceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", serviceID)
			return nil, ErrInvalidService
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.IsActive {
		uc.logger.Warn("CreateBooking: service id=%d is inactive", serviceID)
		return nil, ErrInvalidService
	}

	return service, nil
}

func toResponse(appt *domain.Appointment, serviceID, staffID int64, payment *domain.Payment) *Response {
	return &Response{
		AppointmentID:   appt.ID,
		BookingCode:     appt.BookingCode(),
		CustomerID:      appt.CustomerID,
		BranchID:        appt.BranchID,
		ServiceID:       serviceID,
		StaffID:         staffID,
		Date:            appt.Date,
		StartTime:       appt.StartTime,
		DurationMinutes: appt.DurationMinutes,
		Status:          string(appt.Status),
		TotalPrice:      appt.TotalPrice,
		Note:            appt.Note,
		PaymentID:       payment.ID,
		PaymentMethod:   string(payment.Method),
		PaymentStatus:   string(payment.Status),
		CreatedAt:       appt.CreatedAt,
	}
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return resultCreated
	case errors.Is(err, ErrNoStaffAvailable):
		return resultNoStaff
	case errors.Is(err, ErrSlotJustTaken):
		return resultSlotTaken
	case errors.Is(err, ErrInternal):
		return resultError
	default:
		return resultRejected
	}
}

