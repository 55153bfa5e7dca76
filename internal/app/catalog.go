package app

import (
	"sort"
	"sync"

	"pet-haven/internal/domain/pets"
)

// Catalog mantiene el listado de mascotas en memoria, tal cual lo devolvió
// el backend. El filtrado por especie es una vista, no muta el listado.
type Catalog struct {
	mu   sync.RWMutex
	list []pets.Pet
}

func NewCatalog() *Catalog {
	return &Catalog{}
}

// Replace reemplaza el listado completo (refetch).
func (c *Catalog) Replace(list []pets.Pet) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list = list
}

// Pets devuelve el listado completo en el orden recibido.
func (c *Catalog) Pets() []pets.Pet {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]pets.Pet, len(c.list))
	copy(out, c.list)
	return out
}

// ByID busca una mascota por id en el listado actual.
func (c *Catalog) ByID(id int64) (pets.Pet, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.list {
		if p.ID == id {
			return p, true
		}
	}
	return pets.Pet{}, false
}

// Filtered devuelve la vista filtrada por especie preservando el orden.
func (c *Catalog) Filtered(species string) []pets.Pet {
	return FilterBySpecies(c.Pets(), species)
}

// UpsertLocal inserta o reemplaza una mascota en el listado sin refetch,
// manteniendo el orden por id ascendente del catálogo.
func (c *Catalog) UpsertLocal(p pets.Pet) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.list {
		if c.list[i].ID == p.ID {
			c.list[i] = p
			return
		}
	}
	c.list = append(c.list, p)
	sort.Slice(c.list, func(i, j int) bool { return c.list[i].ID < c.list[j].ID })
}

// RemoveLocal saca una mascota del listado sin refetch.
func (c *Catalog) RemoveLocal(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.list {
		if c.list[i].ID == id {
			c.list = append(c.list[:i], c.list[i+1:]...)
			return
		}
	}
}

// FilterBySpecies filtra por especie preservando el orden relativo.
// Vacío o "all" devuelve el mismo slice sin tocar.
func FilterBySpecies(list []pets.Pet, species string) []pets.Pet {
	if species == "" || species == "all" {
		return list
	}
	out := make([]pets.Pet, 0, len(list))
	for _, p := range list {
		if string(p.Species) == species {
			out = append(out, p)
		}
	}
	return out
}

// CanManage decide si la sesión puede editar o borrar la mascota: solo el
// dueño, y las mascotas de demo (sin dueño) no se tocan.
func CanManage(s Session, p pets.Pet) bool {
	if !s.Authenticated() || p.OwnerUserID == "" {
		return false
	}
	return p.OwnerUserID == s.UserID
}
