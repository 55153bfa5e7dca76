// Package app contiene el estado de front-end: sesión, favoritos, overlays,
// catálogo y tablero. Es independiente del renderizado; cmd/haven lo dibuja.
package app

import "sync"

// Session es el valor de sesión vigente. Zero value == anónimo.
// Se reemplaza entero en cada cambio (login, logout, refresh).
type Session struct {
	Token  string
	UserID string
	Email  string
}

func (s Session) Authenticated() bool {
	return s.Token != "" && s.UserID != ""
}

// SessionStore es el único holder de sesión del proceso. Los interesados se
// suscriben con OnChange; la función devuelta cancela la suscripción.
type SessionStore struct {
	mu   sync.RWMutex
	cur  Session
	subs map[int]func(Session)
	next int
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		subs: make(map[int]func(Session)),
	}
}

func (st *SessionStore) Current() Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.cur
}

// Set reemplaza la sesión y notifica a todos los suscriptores.
func (st *SessionStore) Set(s Session) {
	st.mu.Lock()
	st.cur = s
	handlers := make([]func(Session), 0, len(st.subs))
	for _, fn := range st.subs {
		handlers = append(handlers, fn)
	}
	st.mu.Unlock()

	// notificar fuera del lock: un handler puede volver a leer el store
	for _, fn := range handlers {
		fn(s)
	}
}

func (st *SessionStore) Clear() {
	st.Set(Session{})
}

func (st *SessionStore) OnChange(fn func(Session)) (unsubscribe func()) {
	st.mu.Lock()
	id := st.next
	st.next++
	st.subs[id] = fn
	st.mu.Unlock()

	return func() {
		st.mu.Lock()
		delete(st.subs, id)
		st.mu.Unlock()
	}
}
