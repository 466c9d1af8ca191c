package profileservice

import "errors"

var (
	// ErrPhotographerNotFound возвращается, когда профиль фотографа не найден
	ErrPhotographerNotFound = errors.New("photographer profile not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("profileservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("profileservice client: invalid response")
)
