package screens

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/thebase666/expo-expense-tracker/internal/charts"
	"github.com/thebase666/expo-expense-tracker/internal/logger"
	"github.com/thebase666/expo-expense-tracker/internal/service"
)

// ProfileScreen показывает данные профиля и завершает сессию.
// Подтверждение выхода — дело интерфейса, экран только делегирует.
type ProfileScreen struct {
	service  *service.ExpenseTracker
	identity Identity
	charts   *charts.ChartGenerator
	log      zerolog.Logger
}

// NewProfileScreen создает экран профиля
func NewProfileScreen(svc *service.ExpenseTracker, provider Identity) *ProfileScreen {
	return &ProfileScreen{
		service:  svc,
		identity: provider,
		charts:   charts.NewChartGenerator(),
		log:      logger.New("profile"),
	}
}

// Email возвращает почту текущего пользователя
func (s *ProfileScreen) Email() string {
	session := s.identity.CurrentSession()
	if session == nil {
		return ""
	}
	return session.Email
}

// DisplayName возвращает имя для приветствия — часть почты до @
func (s *ProfileScreen) DisplayName() string {
	email := s.Email()
	if email == "" {
		return "User"
	}
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

// SignOut завершает сессию; провайдер уведомит подписчика, и
// зависимые экраны сбросят свое состояние
func (s *ProfileScreen) SignOut() error {
	if err := s.identity.SignOut(); err != nil {
		s.log.Error().Err(err).Msg("sign out failed")
		return err
	}
	return nil
}

// SpendingChart рисует диаграмму расходов по категориям.
// Возвращает nil без ошибки, если расходов еще нет.
func (s *ProfileScreen) SpendingChart(ctx context.Context) ([]byte, error) {
	session := s.identity.CurrentSession()
	if session == nil {
		return nil, &service.ValidationError{Message: "User not authenticated"}
	}

	transactions, _, err := s.service.ListTransactions(ctx, session.UserID.String())
	if err != nil {
		s.log.Error().Err(err).Msg("fetch failed")
		return nil, err
	}

	return s.charts.GenerateExpenseBreakdown(service.ExpensesByCategory(transactions))
}
