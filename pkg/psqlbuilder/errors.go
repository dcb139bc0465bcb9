package psqlbuilder

import (
	"errors"

	"github.com/lib/pq"
)

const codeUniqueViolation = "23505"

// IsUniqueViolation проверяет, что запрос нарушил уникальный индекс
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == codeUniqueViolation
	}
	return false
}
