package domain

import "time"

type PropertyAction string

const (
	PropertyCreated PropertyAction = "create"
	PropertyUpdated PropertyAction = "update"
	PropertyDeleted PropertyAction = "delete"
)

// PropertyEvent событие изменения каталога для внешних потребителей (поиск, индексация)
type PropertyEvent struct {
	Action     PropertyAction
	PropertyID int64
	OccurredAt time.Time
}
