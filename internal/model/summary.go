package model

import "github.com/shopspring/decimal"

// Summary — агрегированные итоги по списку транзакций.
// Не сохраняется, полностью пересчитывается после каждой выборки.
// Инвариант: Balance == Income + Expenses (расходы отрицательные).
type Summary struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}
