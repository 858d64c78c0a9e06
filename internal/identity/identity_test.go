package identity

import "testing"

func TestProvider_NoSession(t *testing.T) {
	p := NewProvider("https://example.supabase.co", "anon-key")

	if p.CurrentSession() != nil {
		t.Error("Expected no session before sign in")
	}

	// Выход без сессии — no-op, сетевого вызова нет
	if err := p.SignOut(); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestProvider_SubscriberNotified(t *testing.T) {
	p := NewProvider("https://example.supabase.co", "anon-key")

	var got []*Session
	p.Subscribe(func(s *Session) {
		got = append(got, s)
	})

	session := &Session{Email: "user@example.com"}
	p.setSession(session)
	p.setSession(nil)

	if len(got) != 2 {
		t.Fatalf("Expected 2 notifications, got %d", len(got))
	}
	if got[0] != session {
		t.Error("Expected sign-in notification with the new session")
	}
	if got[1] != nil {
		t.Error("Expected sign-out notification with nil session")
	}
	if p.CurrentSession() != nil {
		t.Error("Expected cleared session")
	}
}
