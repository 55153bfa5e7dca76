package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionAuthenticated(t *testing.T) {
	assert.False(t, Session{}.Authenticated())
	assert.False(t, Session{Token: "tok"}.Authenticated())
	assert.True(t, Session{Token: "tok", UserID: "user-1"}.Authenticated())
}

func TestSessionStoreNotifica(t *testing.T) {
	st := NewSessionStore()

	var got []Session
	unsub := st.OnChange(func(s Session) { got = append(got, s) })

	st.Set(Session{Token: "tok", UserID: "user-1"})
	st.Clear()

	assert.Len(t, got, 2)
	assert.True(t, got[0].Authenticated())
	assert.False(t, got[1].Authenticated())

	unsub()
	st.Set(Session{Token: "otro", UserID: "user-2"})
	assert.Len(t, got, 2, "tras cancelar no llegan más notificaciones")
}

func TestSessionStoreClear(t *testing.T) {
	st := NewSessionStore()
	st.Set(Session{Token: "tok", UserID: "user-1", Email: "ana@example.com"})

	st.Clear()

	assert.Equal(t, Session{}, st.Current())
}

func TestSessionStoreHandlerPuedeLeerElStore(t *testing.T) {
	// la notificación corre fuera del lock: el handler puede consultar
	// Current sin deadlock
	st := NewSessionStore()

	var seen Session
	st.OnChange(func(Session) { seen = st.Current() })

	st.Set(Session{Token: "tok", UserID: "user-1"})

	assert.Equal(t, "user-1", seen.UserID)
}
