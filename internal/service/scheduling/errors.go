package scheduling

import "errors"

var (
	// ErrNoCandidates возвращается, когда выбирать мастера не из кого
	ErrNoCandidates = errors.New("scheduling: no candidates")

	// ErrInternal возвращается при ошибках чтения смен или записей
	ErrInternal = errors.New("scheduling: internal error")
)
