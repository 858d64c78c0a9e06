package screens

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/thebase666/expo-expense-tracker/internal/logger"
	"github.com/thebase666/expo-expense-tracker/internal/service"
)

// Общие уведомления об отказе: пользователю не сообщаются детали —
// ни тип ошибки сети, ни причина отказа провайдера
var (
	errSignInFailed = errors.New("Please check your email and password")
	errSignUpFailed = errors.New("Please check your email and try again")
	errVerifyFailed = errors.New("Please check your code and try again")
)

// SignInScreen — экран входа по почте и паролю
type SignInScreen struct {
	identity Identity
	log      zerolog.Logger

	mu       sync.Mutex
	inFlight bool
}

// NewSignInScreen создает экран входа
func NewSignInScreen(provider Identity) *SignInScreen {
	return &SignInScreen{
		identity: provider,
		log:      logger.New("sign-in"),
	}
}

// SignIn проверяет поля и выполняет вход. Повторное нажатие во время
// отправки игнорируется.
func (s *SignInScreen) SignIn(email, password string) error {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil
	}
	s.inFlight = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	if email == "" || password == "" {
		return &service.ValidationError{Message: "Please enter your email and password"}
	}

	if err := s.identity.SignIn(email, password); err != nil {
		s.log.Error().Err(err).Msg("sign in failed")
		return errSignInFailed
	}
	return nil
}

// SignUpScreen — экран регистрации с подтверждением почты кодом
type SignUpScreen struct {
	identity Identity
	log      zerolog.Logger

	mu                  sync.Mutex
	inFlight            bool
	pendingVerification bool
	email               string
	password            string
}

// NewSignUpScreen создает экран регистрации
func NewSignUpScreen(provider Identity) *SignUpScreen {
	return &SignUpScreen{
		identity: provider,
		log:      logger.New("sign-up"),
	}
}

// SignUp проверяет поля и начинает регистрацию; провайдер отправляет
// код подтверждения на почту, экран переходит в режим ожидания кода
func (s *SignUpScreen) SignUp(email, password string) error {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil
	}
	s.inFlight = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	if email == "" || password == "" {
		return &service.ValidationError{Message: "Please enter your email and password"}
	}
	if len(password) < 8 {
		return &service.ValidationError{Message: "Password must be at least 8 characters long"}
	}

	if err := s.identity.SignUp(email, password); err != nil {
		s.log.Error().Err(err).Msg("sign up failed")
		return errSignUpFailed
	}

	s.mu.Lock()
	s.email = email
	s.password = password
	s.pendingVerification = true
	s.mu.Unlock()
	return nil
}

// Verify подтверждает почту кодом из письма и открывает сессию
// сохраненными учетными данными
func (s *SignUpScreen) Verify(code string) error {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil
	}
	s.inFlight = true
	email := s.email
	password := s.password
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	if code == "" {
		return &service.ValidationError{Message: "Please enter the verification code"}
	}

	if err := s.identity.Verify(email, code); err != nil {
		s.log.Error().Err(err).Msg("verification failed")
		return errVerifyFailed
	}
	if err := s.identity.SignIn(email, password); err != nil {
		s.log.Error().Err(err).Msg("post-verification sign in failed")
		return errVerifyFailed
	}

	s.mu.Lock()
	s.pendingVerification = false
	s.email = ""
	s.password = ""
	s.mu.Unlock()
	return nil
}

// PendingVerification сообщает, ждет ли экран код подтверждения
func (s *SignUpScreen) PendingVerification() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingVerification
}

// Restart возвращает экран к форме регистрации («Try Again»)
func (s *SignUpScreen) Restart() {
	s.mu.Lock()
	s.pendingVerification = false
	s.email = ""
	s.password = ""
	s.mu.Unlock()
}
