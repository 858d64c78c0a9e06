package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/thebase666/expo-expense-tracker/internal/model"
)

// ExpenseTracker предоставляет методы для работы с финансовыми данными
type ExpenseTracker struct {
	repo Repository
}

// Repository определяет интерфейс для работы с хранилищем данных
type Repository interface {
	GetTransactions(ctx context.Context, userID string) ([]model.Transaction, error)
	CreateTransaction(ctx context.Context, transaction *model.Transaction) error
	DeleteTransaction(ctx context.Context, id string, userID string) error
}

// NewExpenseTracker создает новый экземпляр ExpenseTracker
func NewExpenseTracker(repo Repository) *ExpenseTracker {
	return &ExpenseTracker{
		repo: repo,
	}
}

// ListTransactions возвращает все транзакции пользователя, новые первыми,
// вместе с пересчитанными итогами. Пустой список — не ошибка.
func (s *ExpenseTracker) ListTransactions(ctx context.Context, userID string) ([]model.Transaction, model.Summary, error) {
	transactions, err := s.repo.GetTransactions(ctx, userID)
	if err != nil {
		return nil, model.Summary{}, err
	}
	return transactions, Aggregate(transactions), nil
}

// AddTransaction проверяет введенные данные и создает транзакцию.
// Проверки идут до любого сетевого вызова, первая неудачная
// останавливает операцию. Знак суммы вычисляется только после
// всех проверок: расходы сохраняются отрицательными.
func (s *ExpenseTracker) AddTransaction(ctx context.Context, userID, title string, amount decimal.Decimal, category model.Category, isExpense bool) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return &ValidationError{Message: "Please enter a title"}
	}
	if !amount.IsPositive() {
		return &ValidationError{Message: "Enter valid amount"}
	}
	if !category.IsValid() {
		return &ValidationError{Message: "Select category"}
	}

	if isExpense {
		amount = amount.Neg()
	}

	transaction := &model.Transaction{
		UserID:   userID,
		Title:    title,
		Amount:   amount,
		Category: category,
	}
	return s.repo.CreateTransaction(ctx, transaction)
}

// DeleteTransaction удаляет ровно одну транзакцию пользователя
func (s *ExpenseTracker) DeleteTransaction(ctx context.Context, id string, userID string) error {
	return s.repo.DeleteTransaction(ctx, id, userID)
}

// Aggregate считает итоги за один проход: доходы — сумма положительных
// сумм, расходы — сумма отрицательных, баланс — их сумма. Функция
// чистая, порядок списка на результат не влияет.
func Aggregate(transactions []model.Transaction) model.Summary {
	income := decimal.Zero
	expenses := decimal.Zero

	for _, t := range transactions {
		if t.Amount.IsPositive() {
			income = income.Add(t.Amount)
		} else {
			expenses = expenses.Add(t.Amount)
		}
	}

	return model.Summary{
		Income:   income,
		Expenses: expenses,
		Balance:  income.Add(expenses),
	}
}

// ExpensesByCategory группирует расходы по категориям для графика.
// Суммы возвращаются положительными
func ExpensesByCategory(transactions []model.Transaction) map[model.Category]decimal.Decimal {
	byCategory := make(map[model.Category]decimal.Decimal)
	for _, t := range transactions {
		if t.Amount.IsPositive() {
			continue
		}
		byCategory[t.Category] = byCategory[t.Category].Add(t.Amount.Neg())
	}
	return byCategory
}
