package apply_weekly_template

import "errors"

var (
	// ErrPhotographerNotFound возвращается, когда профиль фотографа не найден
	ErrPhotographerNotFound = errors.New("photographer not found")

	// ErrAccessDenied возвращается, когда шаблон меняет не сам фотограф
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidHorizon возвращается при горизонте проекции вне списка допустимых
	ErrInvalidHorizon = errors.New("invalid projection horizon")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
