package screens

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thebase666/expo-expense-tracker/internal/model"
	"github.com/thebase666/expo-expense-tracker/internal/service"
)

func TestProfileScreen_DisplayName(t *testing.T) {
	provider := signedInIdentity()
	screen := NewProfileScreen(service.NewExpenseTracker(&mockRepository{}), provider)

	assert.Equal(t, "user@example.com", screen.Email())
	assert.Equal(t, "user", screen.DisplayName())
}

func TestProfileScreen_DisplayNameFallback(t *testing.T) {
	screen := NewProfileScreen(service.NewExpenseTracker(&mockRepository{}), &mockIdentity{})

	assert.Empty(t, screen.Email())
	assert.Equal(t, "User", screen.DisplayName())
}

func TestProfileScreen_SignOut(t *testing.T) {
	signedOut := false
	provider := signedInIdentity()
	provider.SignOutFunc = func() error {
		signedOut = true
		return nil
	}
	screen := NewProfileScreen(service.NewExpenseTracker(&mockRepository{}), provider)

	require.NoError(t, screen.SignOut())
	assert.True(t, signedOut)
}

func TestProfileScreen_SpendingChart(t *testing.T) {
	repo := &mockRepository{
		GetTransactionsFunc: func(ctx context.Context, userID string) ([]model.Transaction, error) {
			return listFixture("a", "b"), nil
		},
	}
	screen := NewProfileScreen(service.NewExpenseTracker(repo), signedInIdentity())

	png, err := screen.SpendingChart(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestProfileScreen_SpendingChartUnauthenticated(t *testing.T) {
	screen := NewProfileScreen(service.NewExpenseTracker(&mockRepository{}), &mockIdentity{})

	_, err := screen.SpendingChart(context.Background())

	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestProfileScreen_SpendingChartFetchError(t *testing.T) {
	repo := &mockRepository{
		GetTransactionsFunc: func(ctx context.Context, userID string) ([]model.Transaction, error) {
			return nil, errors.New("network down")
		},
	}
	screen := NewProfileScreen(service.NewExpenseTracker(repo), signedInIdentity())

	_, err := screen.SpendingChart(context.Background())
	require.Error(t, err)
}
