package create_booking

import "errors"

var (
	// ErrInvalidService возвращается, когда услуга не найдена или неактивна
	ErrInvalidService = errors.New("create_booking: invalid service")

	// ErrIncompleteRequest возвращается, когда не указан филиал, дата или время
	ErrIncompleteRequest = errors.New("create_booking: branch, date and time are required")

	// ErrDateInPast возвращается при попытке записаться на прошедшее время
	ErrDateInPast = errors.New("create_booking: date is in the past")

	// ErrBranchNotFound возвращается, когда филиал не найден
	ErrBranchNotFound = errors.New("create_booking: branch not found")

	// ErrInvalidPaymentMethod возвращается при неподдерживаемом способе оплаты
	ErrInvalidPaymentMethod = errors.New("create_booking: unsupported payment method")

	// ErrNoStaffAvailable возвращается, когда на выбранное время нет свободных мастеров
	ErrNoStaffAvailable = errors.New("create_booking: no staff available for this slot")

	// ErrSlotJustTaken возвращается, когда слот заняли параллельно, а повтор не помог
	ErrSlotJustTaken = errors.New("create_booking: slot just became unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
