package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
	paymentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/payment"
	staffRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/staff"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

// Service сервис жизненного цикла записей: просмотр, отмена клиентом, смена статуса мастером
type Service struct {
	appointmentRepo AppointmentRepository
	paymentRepo     PaymentRepository
	userRepo        UserRepository
	txManager       TransactionManager
	policy          CancelPolicy
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	paymentRepo PaymentRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	policy CancelPolicy,
	logger Logger,
) *Service {
	if policy.Location == nil {
		policy.Location = time.Local
	}
	if policy.Notice <= 0 {
		policy.Notice = domain.DefaultCancelNotice
	}

	return &Service{
		appointmentRepo: appointmentRepo,
		paymentRepo:     paymentRepo,
		userRepo:        userRepo,
		txManager:       txManager,
		policy:          policy,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает запись по ID
// Доступ есть у клиента записи, назначенного мастера и администратора
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, userID)

	appt, err := s.getAppointment(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if err := s.checkUserAccess(ctx, appt, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", userID, id)
		return nil, err
	}

	resp := models.FromDomainAppointment(appt)
	if err := s.attachPaymentStatus(ctx, resp); err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return resp, nil
}

// ListUserBookings записи пользователя: клиента - его собственные, мастера - назначенные ему
// Смотреть чужие записи может только администратор
func (s *Service) ListUserBookings(ctx context.Context, req *models.ListUserBookingsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListUserBookings: user=%d requested by user=%d, status=%v", req.UserID, req.RequesterID, req.Status)

	if req.RequesterID != req.UserID {
		requester, err := s.getUser(ctx, "ListUserBookings", req.RequesterID)
		if err != nil {
			return nil, err
		}
		if !requester.IsAdmin() {
			s.logger.Warn("ListUserBookings: user=%d cannot see bookings of user=%d", req.RequesterID, req.UserID)
			return nil, ErrAccessDenied
		}
	}

	target, err := s.getUser(ctx, "ListUserBookings", req.UserID)
	if err != nil {
		return nil, err
	}

	filter := domain.AppointmentFilter{Date: req.Date}
	if target.IsStaff() {
		filter.StaffID = &target.ID
	} else {
		filter.CustomerID = &target.ID
	}

	// Конвертируем статус из строки в domain.AppointmentStatus
	if req.Status != nil {
		status, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			s.logger.Warn("ListUserBookings: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	list, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: ListUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListUserBookings: successfully fetched %d appointments for user=%d", len(list), req.UserID)
	return models.FromDomainAppointmentList(list), nil
}

// Cancel отменяет запись по запросу клиента
// Отменить можно только свою запись в статусе PENDING или CONFIRMED не позже чем за 3 часа до начала
// Оплаченный платеж помечается как возвращенный
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%d by user=%d", id, req.UserID)

	var result *domain.Appointment

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		appt, err := s.getAppointment(txCtx, "Cancel", id)
		if err != nil {
			return err
		}

		// Отменяет только клиент записи
		if appt.CustomerID != req.UserID {
			s.logger.Warn("Cancel: user=%d is not the customer of appointment id=%d", req.UserID, id)
			return ErrAccessDenied
		}

		now := s.timeProvider.Now()
		if !appt.CanBeCancelled(now, s.policy.Notice, s.policy.Location) {
			s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s, starts at %s",
				id, appt.Status, appt.StartsAt(s.policy.Location).Format(time.RFC3339))
			return ErrCannotCancel
		}

		if err := s.setStatus(txCtx, "Cancel", appt, domain.StatusCanceled); err != nil {
			return err
		}

		payment, err := s.findPayment(txCtx, "Cancel", id)
		if err != nil {
			return err
		}
		if payment != nil && payment.Status == domain.PaymentPaid {
			if err := s.paymentRepo.UpdateStatus(txCtx, payment.ID, domain.PaymentRefunded); err != nil {
				s.logger.Error("Cancel: failed to refund payment id=%d: %v", payment.ID, err)
				return fmt.Errorf("%w: Cancel - refund payment: %v", ErrInternal, err)
			}
		}

		result = appt
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return models.FromDomainAppointment(result), nil
}

// UpdateStatus переводит запись по шагу жизненного цикла
// Доступно назначенному мастеру и администратору; confirm также отмечает платеж как оплаченный
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: appointment id=%d, action=%s by user=%d", id, req.Action, req.UserID)

	action := domain.StatusAction(req.Action)
	if !action.IsValid() {
		s.logger.Warn("UpdateStatus: unknown action=%s", req.Action)
		return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidInput, req.Action)
	}

	user, err := s.getUser(ctx, "UpdateStatus", req.UserID)
	if err != nil {
		return nil, err
	}
	if !user.IsStaff() && !user.IsAdmin() {
		s.logger.Warn("UpdateStatus: user=%d with role %s cannot change status", req.UserID, user.Role)
		return nil, ErrAccessDenied
	}

	var result *domain.Appointment

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		appt, err := s.getAppointment(txCtx, "UpdateStatus", id)
		if err != nil {
			return err
		}

		// Мастер меняет статус только своих записей
		if user.IsStaff() && !appt.HasStaff(user.ID) {
			s.logger.Warn("UpdateStatus: staff=%d is not assigned to appointment id=%d", user.ID, id)
			return ErrAccessDenied
		}

		next, ok := action.Next(appt.Status)
		if !ok {
			s.logger.Warn("UpdateStatus: action=%s is not allowed for appointment id=%d in status %s", action, id, appt.Status)
			return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, action, appt.Status)
		}

		if err := s.setStatus(txCtx, "UpdateStatus", appt, next); err != nil {
			return err
		}

		// Подтверждение - это получение оплаты
		if action == domain.ActionConfirm {
			if err := s.markPaid(txCtx, id); err != nil {
				return err
			}
		}

		result = appt
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: appointment id=%d is now %s", id, result.Status)
	return models.FromDomainAppointment(result), nil
}

// Вспомогательные методы

func (s *Service) getAppointment(ctx context.Context, op string, id int64) (*domain.Appointment, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return appt, nil
}

func (s *Service) getUser(ctx context.Context, op string, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, staffRepo.ErrUserNotFound) {
			s.logger.Warn("%s: user id=%d not found", op, id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("%s: failed to get user id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - get user: %v", ErrInternal, op, err)
	}
	return user, nil
}

func (s *Service) setStatus(ctx context.Context, op string, appt *domain.Appointment, status domain.AppointmentStatus) error {
	if err := s.appointmentRepo.UpdateStatus(ctx, appt.ID, status); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("%s: failed to update status of appointment id=%d: %v", op, appt.ID, err)
		return fmt.Errorf("%w: %s - update status: %v", ErrInternal, op, err)
	}
	appt.Status = status
	return nil
}

// findPayment платеж записи или nil, если его нет
func (s *Service) findPayment(ctx context.Context, op string, appointmentID int64) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetByAppointmentID(ctx, appointmentID)
	if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("%s: failed to get payment of appointment id=%d: %v", op, appointmentID, err)
		return nil, fmt.Errorf("%w: %s - get payment: %v", ErrInternal, op, err)
	}
	return payment, nil
}

func (s *Service) markPaid(ctx context.Context, appointmentID int64) error {
	payment, err := s.findPayment(ctx, "UpdateStatus", appointmentID)
	if err != nil {
		return err
	}
	if payment == nil {
		s.logger.Warn("UpdateStatus: appointment id=%d has no payment", appointmentID)
		return nil
	}

	if err := s.paymentRepo.UpdateStatus(ctx, payment.ID, domain.PaymentPaid); err != nil {
		s.logger.Error("UpdateStatus: failed to mark payment id=%d as paid: %v", payment.ID, err)
		return fmt.Errorf("%w: UpdateStatus - mark paid: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) attachPaymentStatus(ctx context.Context, resp *models.AppointmentResponse) error {
	payment, err := s.findPayment(ctx, "GetByID", resp.ID)
	if err != nil {
		return err
	}
	if payment != nil {
		resp.PaymentStatus = ptr.Ptr(string(payment.Status))
	}
	return nil
}

// checkUserAccess клиент записи, назначенный мастер или администратор
func (s *Service) checkUserAccess(ctx context.Context, appt *domain.Appointment, userID int64) error {
	if appt.CustomerID == userID || appt.HasStaff(userID) {
		return nil
	}

	user, err := s.getUser(ctx, "checkUserAccess", userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrAccessDenied
		}
		return err
	}

	if !user.IsAdmin() {
		return ErrAccessDenied
	}
	return nil
}
