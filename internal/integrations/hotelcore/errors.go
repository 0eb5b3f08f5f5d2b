package hotelcore

import "errors"

var (
	// ErrSessionExpired возвращается при ответе 401: сессия пользователя истекла.
	// Это жесткая отмена запроса, а не повторяемая ошибка - вызывающая сторона
	// должна прекратить текущую работу и отправить пользователя на повторный вход.
	ErrSessionExpired = errors.New("hotelcore client: access token has expired")

	// ErrInternal возвращается при внутренних ошибках клиента и сбоях транспорта
	ErrInternal = errors.New("hotelcore client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе бэкенда
	ErrInvalidResponse = errors.New("hotelcore client: invalid response")
)
