package service

// ValidationError — ошибка клиентской проверки введенных данных.
// Возникает до любого сетевого вызова, сообщение показывается
// пользователю как есть.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
