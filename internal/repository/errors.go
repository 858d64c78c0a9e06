package repository

// Ошибки хранилища различаются по типу операции. Экраны показывают
// пользователю общее сообщение, детали остаются в логах.

// FetchError — ошибка чтения списка транзакций
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return "failed to fetch transactions: " + e.Err.Error()
}

func (e *FetchError) Unwrap() error { return e.Err }

// CreateError — ошибка создания транзакции
type CreateError struct {
	Err error
}

func (e *CreateError) Error() string {
	return "failed to create transaction: " + e.Err.Error()
}

func (e *CreateError) Unwrap() error { return e.Err }

// DeleteError — ошибка удаления транзакции
type DeleteError struct {
	Err error
}

func (e *DeleteError) Error() string {
	return "failed to delete transaction: " + e.Err.Error()
}

func (e *DeleteError) Unwrap() error { return e.Err }
