package app

import (
	"sync"

	"pet-haven/internal/domain/pets"
)

// OverlayKind discrimina el overlay visible. Un solo valor para todo el
// estado modal: dos overlays abiertos a la vez no son representables.
type OverlayKind int

const (
	OverlayNone OverlayKind = iota
	OverlayAuth
	OverlayAdopt
	OverlayPetForm
)

// Overlay es el overlay activo con su entidad objetivo.
// - OverlayAdopt: Pet es la mascota a adoptar (nunca nil).
// - OverlayPetForm: Pet nil => crear; no-nil => editar esa mascota.
// - OverlayAuth / OverlayNone: Pet siempre nil.
type Overlay struct {
	Kind OverlayKind
	Pet  *pets.Pet
}

// OverlayController gobierna las transiciones de overlays.
type OverlayController struct {
	mu   sync.RWMutex
	cur  Overlay
	sess *SessionStore
}

func NewOverlayController(sess *SessionStore) *OverlayController {
	return &OverlayController{sess: sess}
}

func (c *OverlayController) Current() Overlay {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cur
}

// RequestAdopt implementa el click en "adoptar": anónimo abre autenticación
// (sin dejar ningún target de adopción); con sesión abre el form de adopción
// para esa mascota exacta.
func (c *OverlayController) RequestAdopt(p pets.Pet) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.sess.Current().Authenticated() {
		c.cur = Overlay{Kind: OverlayAuth}
		return
	}
	c.cur = Overlay{Kind: OverlayAdopt, Pet: &p}
}

func (c *OverlayController) OpenAuth() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cur = Overlay{Kind: OverlayAuth}
}

// OpenPetForm abre el form de publicación: pet nil => crear, no-nil => editar.
func (c *OverlayController) OpenPetForm(p *pets.Pet) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cur = Overlay{Kind: OverlayPetForm, Pet: p}
}

// AuthSucceeded cierra el overlay de autenticación si está abierto.
func (c *OverlayController) AuthSucceeded() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cur.Kind == OverlayAuth {
		c.cur = Overlay{}
	}
}

// Submitted cierra el overlay activo tras un envío exitoso.
func (c *OverlayController) Submitted() {
	c.Close()
}

// Close cierra lo que esté abierto y limpia el target: el próximo open
// arranca limpio.
func (c *OverlayController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cur = Overlay{}
}
