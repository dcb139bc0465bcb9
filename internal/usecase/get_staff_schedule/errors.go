package get_staff_schedule

import "errors"

var (
	// ErrUserNotFound возвращается, когда мастер не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrNotStaff возвращается, когда пользователь не мастер
	ErrNotStaff = errors.New("user is not staff")

	// ErrAccessDenied возвращается, когда чужое расписание смотрит не администратор
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
