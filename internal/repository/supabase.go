package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/supabase-community/supabase-go"

	"github.com/thebase666/expo-expense-tracker/internal/model"
)

type SupabaseRepository struct {
	client  *supabase.Client
	retries int
}

func NewSupabaseRepository(url, key string, retries int) (*SupabaseRepository, error) {
	client, err := supabase.NewClient(url, key, &supabase.ClientOptions{})
	if err != nil {
		return nil, err
	}

	return &SupabaseRepository{
		client:  client,
		retries: retries,
	}, nil
}

// insertTransaction — тело вставки. ID и created_at не отправляются:
// их назначает хранилище
type insertTransaction struct {
	UserID   string          `json:"user_id"`
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Category model.Category  `json:"category"`
}

func (r *SupabaseRepository) CreateTransaction(ctx context.Context, transaction *model.Transaction) error {
	row := insertTransaction{
		UserID:   transaction.UserID,
		Title:    transaction.Title,
		Amount:   transaction.Amount,
		Category: transaction.Category,
	}

	data, _, err := r.client.From("transactions").Insert(row, false, "", "", "").Execute()
	if err != nil {
		return &CreateError{Err: err}
	}

	// Парсим ответ, чтобы вернуть вызывающему назначенные хранилищем
	// ID и created_at
	var created []model.Transaction
	if err := json.Unmarshal(data, &created); err != nil {
		return &CreateError{Err: fmt.Errorf("failed to parse created transaction: %w", err)}
	}
	if len(created) > 0 {
		transaction.ID = created[0].ID
		transaction.CreatedAt = created[0].CreatedAt
	}
	return nil
}

func (r *SupabaseRepository) GetTransactions(ctx context.Context, userID string) ([]model.Transaction, error) {
	var transactions []model.Transaction

	err := retry(r.retries, func() error {
		// Полная выборка по владельцу, новые записи первыми
		data, _, err := r.client.From("transactions").
			Select("*", "", false).
			Eq("user_id", userID).
			Order("created_at.desc", nil).
			Execute()
		if err != nil {
			return err
		}

		return json.Unmarshal(data, &transactions)
	})
	if err != nil {
		return nil, &FetchError{Err: err}
	}

	if transactions == nil {
		transactions = []model.Transaction{}
	}
	return transactions, nil
}

func (r *SupabaseRepository) DeleteTransaction(ctx context.Context, id string, userID string) error {
	_, _, err := r.client.From("transactions").
		Delete("", "").
		Eq("id", id).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return &DeleteError{Err: err}
	}
	return nil
}
