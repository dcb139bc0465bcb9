package assign_recurring_shifts

import "errors"

var (
	// ErrInvalidRule возвращается, когда RRULE не разбирается
	ErrInvalidRule = errors.New("invalid recurrence rule")

	// ErrBranchNotFound возвращается, когда филиал не найден
	ErrBranchNotFound = errors.New("branch not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrForbidden возвращается, когда назначает не администратор
	ErrForbidden = errors.New("only admin can assign shifts")

	// ErrNotStaff возвращается, когда смену назначают не мастеру
	ErrNotStaff = errors.New("shifts can only be assigned to staff")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
