package screens

import (
	"context"

	"github.com/thebase666/expo-expense-tracker/internal/identity"
	"github.com/thebase666/expo-expense-tracker/internal/model"
)

// mockRepository — мок хранилища в стиле функций-полей
type mockRepository struct {
	GetTransactionsFunc   func(ctx context.Context, userID string) ([]model.Transaction, error)
	CreateTransactionFunc func(ctx context.Context, transaction *model.Transaction) error
	DeleteTransactionFunc func(ctx context.Context, id string, userID string) error
}

func (m *mockRepository) GetTransactions(ctx context.Context, userID string) ([]model.Transaction, error) {
	if m.GetTransactionsFunc != nil {
		return m.GetTransactionsFunc(ctx, userID)
	}
	return []model.Transaction{}, nil
}

func (m *mockRepository) CreateTransaction(ctx context.Context, transaction *model.Transaction) error {
	if m.CreateTransactionFunc != nil {
		return m.CreateTransactionFunc(ctx, transaction)
	}
	return nil
}

func (m *mockRepository) DeleteTransaction(ctx context.Context, id string, userID string) error {
	if m.DeleteTransactionFunc != nil {
		return m.DeleteTransactionFunc(ctx, id, userID)
	}
	return nil
}

// mockIdentity — мок провайдера идентификации
type mockIdentity struct {
	Session     *identity.Session
	SignInFunc  func(email, password string) error
	SignUpFunc  func(email, password string) error
	VerifyFunc  func(email, code string) error
	SignOutFunc func() error
}

func (m *mockIdentity) SignIn(email, password string) error {
	if m.SignInFunc != nil {
		return m.SignInFunc(email, password)
	}
	return nil
}

func (m *mockIdentity) SignUp(email, password string) error {
	if m.SignUpFunc != nil {
		return m.SignUpFunc(email, password)
	}
	return nil
}

func (m *mockIdentity) Verify(email, code string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(email, code)
	}
	return nil
}

func (m *mockIdentity) SignOut() error {
	if m.SignOutFunc != nil {
		return m.SignOutFunc()
	}
	return nil
}

func (m *mockIdentity) CurrentSession() *identity.Session {
	return m.Session
}
