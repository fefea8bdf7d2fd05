package pgerr

import (
	"errors"

	"github.com/lib/pq"
)

// Коды ошибок Postgres (SQLSTATE)
const (
	codeUniqueViolation     pq.ErrorCode = "23505"
	codeForeignKeyViolation pq.ErrorCode = "23503"
	codeSerializationFail   pq.ErrorCode = "40001"
)

func IsUniqueViolation(err error) bool {
	return hasCode(err, codeUniqueViolation)
}

func IsForeignKeyViolation(err error) bool {
	return hasCode(err, codeForeignKeyViolation)
}

// IsSerializationFailure конфликт SERIALIZABLE транзакций
func IsSerializationFailure(err error) bool {
	return hasCode(err, codeSerializationFail)
}

// Constraint имя нарушенного ограничения или пустая строка
func Constraint(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}

func hasCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == code
	}
	return false
}
