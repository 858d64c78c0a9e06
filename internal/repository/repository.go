package repository

import (
	"context"

	"github.com/thebase666/expo-expense-tracker/internal/model"
)

type Repository interface {
	// Транзакции
	CreateTransaction(ctx context.Context, transaction *model.Transaction) error
	GetTransactions(ctx context.Context, userID string) ([]model.Transaction, error)
	DeleteTransaction(ctx context.Context, id string, userID string) error
}
