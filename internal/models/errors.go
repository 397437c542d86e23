package models

import "errors"

// Таксономия ошибок пайплайна триажа (§ политика распространения:
// ошибки обогащения поглощаются, ошибки формы записи отклоняют запрос).
var (
	// ErrValidation - некорректные или отсутствующие обязательные поля; запись не создаётся
	ErrValidation = errors.New("validation error")

	// ErrModelUnavailable - модель (vision/NLP) не загружена или недоступна
	ErrModelUnavailable = errors.New("model unavailable")

	// ErrInvalidImage - байты изображения не декодируются
	ErrInvalidImage = errors.New("invalid image")

	// ErrIndexUnavailable - индекс эмбеддингов недоступен; дедупликация открывается fail-open
	ErrIndexUnavailable = errors.New("similarity index unavailable")

	// ErrInconsistentReference - duplicate_of или cluster_id указывает на несуществующий
	// либо закрытый инцидент; логируется как внутренняя ошибка, не доходит до пользователя
	ErrInconsistentReference = errors.New("inconsistent incident reference")

	// ErrNotFound - инцидент не найден
	ErrNotFound = errors.New("incident not found")
)
