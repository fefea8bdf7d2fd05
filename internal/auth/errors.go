package auth

import "errors"

var (
	// ErrInvalidToken токен не подписан нами, просрочен или поврежден
	ErrInvalidToken = errors.New("auth.tokens: invalid token")

	// ErrSignToken возвращается, когда не удалось подписать токен
	ErrSignToken = errors.New("auth.tokens: failed to sign token")
)
