package app

import (
	"sync"

	"pet-haven/internal/domain/posts"
)

// Board mantiene los posts del tablón comunitario tal cual los entregó el
// backend (más reciente primero). No reordena localmente.
type Board struct {
	mu   sync.RWMutex
	list []posts.Post
}

func NewBoard() *Board {
	return &Board{}
}

// Replace reemplaza el tablón completo (refetch).
func (b *Board) Replace(list []posts.Post) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.list = list
}

// Posts devuelve los posts en el orden recibido.
func (b *Board) Posts() []posts.Post {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]posts.Post, len(b.list))
	copy(out, b.list)
	return out
}

// RemoveLocal saca un post del tablón sin refetch (borrado ya confirmado
// por el backend).
func (b *Board) RemoveLocal(id int64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.list {
		if b.list[i].ID == id {
			b.list = append(b.list[:i], b.list[i+1:]...)
			return
		}
	}
}

// CanDelete decide si la sesión puede borrar el post: solo el autor.
func CanDelete(s Session, p posts.Post) bool {
	return s.Authenticated() && p.UserID == s.UserID
}
