package screens

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/thebase666/expo-expense-tracker/internal/logger"
	"github.com/thebase666/expo-expense-tracker/internal/model"
	"github.com/thebase666/expo-expense-tracker/internal/service"
)

// CreateForm — введенные пользователем значения формы
type CreateForm struct {
	Title     string
	Amount    string
	Category  model.Category
	IsExpense bool
}

func defaultForm() CreateForm {
	return CreateForm{IsExpense: true}
}

// CreateScreen держит состояние экрана создания транзакции.
// Повторная отправка, пока предыдущая в полете, игнорируется —
// это защита от повторного входа, а не очередь.
type CreateScreen struct {
	service  *service.ExpenseTracker
	identity Identity
	log      zerolog.Logger

	mu       sync.Mutex
	inFlight bool
	form     CreateForm
}

// NewCreateScreen создает экран новой транзакции
func NewCreateScreen(svc *service.ExpenseTracker, provider Identity) *CreateScreen {
	return &CreateScreen{
		service:  svc,
		identity: provider,
		log:      logger.New("create"),
		form:     defaultForm(),
	}
}

func (s *CreateScreen) SetTitle(title string) {
	s.mu.Lock()
	s.form.Title = title
	s.mu.Unlock()
}

func (s *CreateScreen) SetAmount(amount string) {
	s.mu.Lock()
	s.form.Amount = amount
	s.mu.Unlock()
}

func (s *CreateScreen) SelectCategory(category model.Category) {
	s.mu.Lock()
	s.form.Category = category
	s.mu.Unlock()
}

func (s *CreateScreen) SetExpense(isExpense bool) {
	s.mu.Lock()
	s.form.IsExpense = isExpense
	s.mu.Unlock()
}

// Form возвращает текущие значения формы
func (s *CreateScreen) Form() CreateForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// Submit проверяет форму и создает транзакцию. Порядок проверок:
// пользователь аутентифицирован → заголовок → сумма → категория;
// первая неудачная проверка выигрывает, до сети дело не доходит.
// При успехе форма сбрасывается, при сбое сохраняет введенное,
// чтобы отправку можно было повторить без повторного ввода.
func (s *CreateScreen) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil
	}
	s.inFlight = true
	form := s.form
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	session := s.identity.CurrentSession()
	if session == nil {
		return &service.ValidationError{Message: "User not authenticated"}
	}
	if strings.TrimSpace(form.Title) == "" {
		return &service.ValidationError{Message: "Please enter a title"}
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(form.Amount))
	if form.Amount == "" || err != nil || !amount.IsPositive() {
		return &service.ValidationError{Message: "Enter valid amount"}
	}
	if !form.Category.IsValid() {
		return &service.ValidationError{Message: "Select category"}
	}

	err = s.service.AddTransaction(ctx, session.UserID.String(), form.Title, amount, form.Category, form.IsExpense)
	if err != nil {
		s.log.Error().Err(err).Msg("create failed")
		return err
	}

	s.mu.Lock()
	s.form = defaultForm()
	s.mu.Unlock()
	return nil
}
