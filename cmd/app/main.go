package main

import (
	"context"
	"log"
	"os"

	"github.com/thebase666/expo-expense-tracker/internal/config"
	"github.com/thebase666/expo-expense-tracker/internal/identity"
	"github.com/thebase666/expo-expense-tracker/internal/repository"
	"github.com/thebase666/expo-expense-tracker/internal/screens"
	"github.com/thebase666/expo-expense-tracker/internal/service"
)

// Точка входа для локального тестирования: собирает зависимости,
// входит учетными данными из окружения и печатает итоги по списку.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	repo, err := repository.NewSupabaseRepository(cfg.SupabaseURL, cfg.SupabaseKey, cfg.FetchRetries)
	if err != nil {
		log.Fatal(err)
	}

	tracker := service.NewExpenseTracker(repo)
	provider := identity.NewProvider(cfg.SupabaseURL, cfg.SupabaseKey)

	list := screens.NewListScreen(tracker)

	// Единственная точка подписки на смену сессии: вход монтирует
	// экран списка, выход сбрасывает зависимое состояние
	provider.Subscribe(func(session *identity.Session) {
		if session == nil {
			list.Reset()
			return
		}
		list.Mount(context.Background(), session.UserID.String())
	})

	signIn := screens.NewSignInScreen(provider)
	if err := signIn.SignIn(os.Getenv("APP_EMAIL"), os.Getenv("APP_PASSWORD")); err != nil {
		log.Fatal(err)
	}

	snapshot := list.Snapshot()
	log.Printf("%d transactions, balance %s", len(snapshot.Transactions), snapshot.Summary.Balance)

	profile := screens.NewProfileScreen(tracker, provider)
	if err := profile.SignOut(); err != nil {
		log.Fatal(err)
	}
}
