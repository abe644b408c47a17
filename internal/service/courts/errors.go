package courts

import "errors"

var (
	// ErrInvalidCategory возвращается при некорректной категории корта
	ErrInvalidCategory = errors.New("invalid court category")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
