package events

import "errors"

var (
	// ErrConnect ошибка подключения к брокеру
	ErrConnect = errors.New("events: failed to connect to broker")

	// ErrPublish ошибка публикации сообщения
	ErrPublish = errors.New("events: failed to publish message")
)
