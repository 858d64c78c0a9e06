package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction — транзакция пользователя. ID и CreatedAt назначаются
// хранилищем при вставке. Знак Amount кодирует направление:
// положительная сумма — доход, отрицательная — расход.
type Transaction struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Category  Category        `json:"category"`
	CreatedAt time.Time       `json:"created_at"`
}

// IsIncome сообщает, является ли транзакция доходом
func (t Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}
