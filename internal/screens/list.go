package screens

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/thebase666/expo-expense-tracker/internal/logger"
	"github.com/thebase666/expo-expense-tracker/internal/model"
	"github.com/thebase666/expo-expense-tracker/internal/service"
)

// ListState — состояние экрана списка
type ListState int

const (
	ListIdle ListState = iota
	ListLoading
	ListReady
	ListRefreshing
)

// ListSnapshot — срез состояния экрана для отрисовки
type ListSnapshot struct {
	State        ListState
	Transactions []model.Transaction
	Summary      model.Summary
	Deleting     map[string]bool
	Notice       string
}

// ListScreen держит состояние экрана списка транзакций: загрузку,
// обновление по свайпу и пометки удаления по строкам. Отображаемый
// список — всегда прямое отражение последней успешной выборки.
type ListScreen struct {
	service *service.ExpenseTracker
	log     zerolog.Logger

	mu           sync.Mutex
	userID       string
	state        ListState
	transactions []model.Transaction
	summary      model.Summary
	deleting     map[string]bool
	notice       string
	fetchSeq     uint64
}

// NewListScreen создает экран списка транзакций
func NewListScreen(svc *service.ExpenseTracker) *ListScreen {
	return &ListScreen{
		service:  svc,
		log:      logger.New("list"),
		deleting: make(map[string]bool),
	}
}

// Mount вызывается при открытии экрана или смене пользователя
func (s *ListScreen) Mount(ctx context.Context, userID string) {
	s.mu.Lock()
	s.userID = userID
	s.state = ListLoading
	s.transactions = nil
	s.summary = model.Summary{}
	s.notice = ""
	s.mu.Unlock()

	s.fetch(ctx)
}

// Refresh перечитывает список по запросу пользователя; текущий список
// остается видимым, экран всегда возвращается в Ready
func (s *ListScreen) Refresh(ctx context.Context) {
	s.mu.Lock()
	if s.state != ListReady {
		s.mu.Unlock()
		return
	}
	s.state = ListRefreshing
	s.mu.Unlock()

	s.fetch(ctx)
}

// Delete удаляет одну транзакцию после подтверждения пользователем.
// Пометка удаления держится по идентификатору строки, остальные строки
// остаются интерактивными. После успешного удаления список
// перечитывается целиком; при сбое выборка пропускается и список
// остается прежним.
func (s *ListScreen) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	if s.deleting[id] {
		s.mu.Unlock()
		return
	}
	s.deleting[id] = true
	userID := s.userID
	s.mu.Unlock()

	err := s.service.DeleteTransaction(ctx, id, userID)
	if err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("delete failed")
		s.mu.Lock()
		delete(s.deleting, id)
		s.notice = "Failed to delete transaction"
		s.mu.Unlock()
		return
	}

	s.fetch(ctx)

	s.mu.Lock()
	delete(s.deleting, id)
	s.mu.Unlock()
}

// Reset сбрасывает состояние экрана при выходе пользователя
func (s *ListScreen) Reset() {
	s.mu.Lock()
	s.userID = ""
	s.state = ListIdle
	s.transactions = nil
	s.summary = model.Summary{}
	s.deleting = make(map[string]bool)
	s.notice = ""
	// Обесцениваем все незавершенные выборки
	s.fetchSeq++
	s.mu.Unlock()
}

// Snapshot возвращает копию состояния экрана
func (s *ListScreen) Snapshot() ListSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	transactions := make([]model.Transaction, len(s.transactions))
	copy(transactions, s.transactions)
	deleting := make(map[string]bool, len(s.deleting))
	for id := range s.deleting {
		deleting[id] = true
	}

	return ListSnapshot{
		State:        s.state,
		Transactions: transactions,
		Summary:      s.summary,
		Deleting:     deleting,
		Notice:       s.notice,
	}
}

// fetch выполняет полную выборку и применяет результат, только если
// его не обогнала более поздняя выборка. Каждая выборка получает
// монотонный номер; устаревший результат отбрасывается, поэтому
// гонка «обновление против удаления» не воскрешает удаленную строку.
func (s *ListScreen) fetch(ctx context.Context) {
	s.mu.Lock()
	s.fetchSeq++
	seq := s.fetchSeq
	userID := s.userID
	s.mu.Unlock()

	transactions, summary, err := s.service.ListTransactions(ctx, userID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.fetchSeq {
		s.log.Debug().Uint64("seq", seq).Msg("stale fetch discarded")
		return
	}

	s.state = ListReady
	if err != nil {
		s.log.Error().Err(err).Msg("fetch failed")
		s.notice = "Failed to fetch transactions"
		return
	}

	s.notice = ""
	s.transactions = transactions
	s.summary = summary
}
