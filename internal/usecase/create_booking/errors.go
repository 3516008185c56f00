package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном типе бронирования
	// Ошибки пользовательского ввода возвращаются как отказ в Response, а не как ошибка
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при нарушении внутренних инвариантов
	ErrInternal = errors.New("create_booking: internal error")
)
