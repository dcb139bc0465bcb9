package submit_shift_request

import "errors"

var (
	// ErrOutsideWindow возвращается, когда дата вне окна самозаписи (эта и следующая неделя)
	ErrOutsideWindow = errors.New("work date is outside the self-schedule window")

	// ErrDuplicateRequest возвращается, когда на эту смену уже есть заявка в PENDING или APPROVED
	ErrDuplicateRequest = errors.New("shift request already exists")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrNotStaff возвращается, когда заявку подает не мастер
	ErrNotStaff = errors.New("only staff can request shifts")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
