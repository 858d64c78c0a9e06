package screens

import "github.com/thebase666/expo-expense-tracker/internal/identity"

// Identity — провайдер идентификации глазами экранов.
// Реализуется identity.Provider.
type Identity interface {
	SignIn(email, password string) error
	SignUp(email, password string) error
	Verify(email, code string) error
	SignOut() error
	CurrentSession() *identity.Session
}
