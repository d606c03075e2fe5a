package snapshot

import (
	"errors"
	"fmt"
)

// ErrVersionUnsupported снапшот создан более новой версией приложения
var ErrVersionUnsupported = errors.New("snapshot version is newer than supported")

// ValidationError структурная ошибка входного снапшота с указанием поля.
// Сохраняет точную причину для пользовательского сообщения вместо
// безликого "невалидный файл".
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid snapshot: %s", e.Reason)
	}
	return fmt.Sprintf("invalid snapshot field %q: %s", e.Field, e.Reason)
}
