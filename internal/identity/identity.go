package identity

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
)

// Session — активная сессия пользователя, выданная провайдером
// идентификации. Стабильный идентификатор пользователя используется
// как ключ владельца всех его транзакций.
type Session struct {
	UserID      uuid.UUID
	Email       string
	AccessToken string
}

// Provider оборачивает клиент GoTrue и хранит текущую сессию.
// Сессия — единственное разделяемое состояние процесса; экраны
// получают провайдер при создании и не читают её из глобальных
// переменных.
type Provider struct {
	client gotrue.Client

	mu       sync.RWMutex
	session  *Session
	onChange func(*Session)
}

// NewProvider создает провайдер идентификации поверх GoTrue
func NewProvider(url, key string) *Provider {
	client := gotrue.New("", key).
		WithCustomGoTrueURL(strings.TrimRight(url, "/") + "/auth/v1")

	return &Provider{
		client: client,
	}
}

// Subscribe регистрирует единственного подписчика на смену сессии.
// Подписчик вызывается при входе, подтверждении почты и выходе
// (с nil), чтобы зависимое состояние экранов было сброшено.
func (p *Provider) Subscribe(fn func(*Session)) {
	p.mu.Lock()
	p.onChange = fn
	p.mu.Unlock()
}

// SignIn выполняет вход по почте и паролю и открывает сессию
func (p *Provider) SignIn(email, password string) error {
	resp, err := p.client.SignInWithEmailPassword(email, password)
	if err != nil {
		return fmt.Errorf("failed to sign in: %w", err)
	}

	p.setSession(&Session{
		UserID:      resp.User.ID,
		Email:       resp.User.Email,
		AccessToken: resp.AccessToken,
	})
	return nil
}

// SignUp регистрирует пользователя; провайдер отправляет на почту
// код подтверждения, сессия откроется только после Verify
func (p *Provider) SignUp(email, password string) error {
	_, err := p.client.Signup(types.SignupRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("failed to sign up: %w", err)
	}
	return nil
}

// Verify подтверждает почту кодом из письма
func (p *Provider) Verify(email, code string) error {
	_, err := p.client.VerifyForUser(types.VerifyForUserRequest{
		Type:  types.VerificationTypeSignup,
		Token: code,
		Email: email,
	})
	if err != nil {
		return fmt.Errorf("failed to verify email: %w", err)
	}
	return nil
}

// SignOut закрывает сессию на стороне провайдера и уведомляет
// подписчика, чтобы тот сбросил зависимое состояние
func (p *Provider) SignOut() error {
	p.mu.RLock()
	session := p.session
	p.mu.RUnlock()

	if session == nil {
		return nil
	}

	if err := p.client.WithToken(session.AccessToken).Logout(); err != nil {
		return fmt.Errorf("failed to sign out: %w", err)
	}

	p.setSession(nil)
	return nil
}

// CurrentSession возвращает активную сессию или nil
func (p *Provider) CurrentSession() *Session {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.session
}

func (p *Provider) setSession(s *Session) {
	p.mu.Lock()
	p.session = s
	fn := p.onChange
	p.mu.Unlock()

	if fn != nil {
		fn(s)
	}
}
