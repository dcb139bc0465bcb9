package review_shifts

import "errors"

var (
	// ErrShiftNotFound возвращается, когда заявка не найдена
	ErrShiftNotFound = errors.New("shift not found")

	// ErrNotPending возвращается при попытке решить уже решенную заявку
	ErrNotPending = errors.New("shift request is not pending")

	// ErrBranchRequired возвращается, когда подтверждаемой смене не назначен филиал
	ErrBranchRequired = errors.New("branch is required to approve a shift")

	// ErrBranchNotFound возвращается, когда филиал не найден
	ErrBranchNotFound = errors.New("branch not found")

	// ErrUserNotFound возвращается, когда администратор не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrForbidden возвращается, когда решение принимает не администратор
	ErrForbidden = errors.New("only admin can review shifts")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
