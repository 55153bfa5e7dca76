package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pet-haven/internal/domain/pets"
)

func samplePets() []pets.Pet {
	return []pets.Pet{
		{ID: 1, Name: "贝拉", Species: pets.SpeciesDog},
		{ID: 2, Name: "露娜", Species: pets.SpeciesCat},
		{ID: 3, Name: "查理", Species: pets.SpeciesDog},
		{ID: 4, Name: "小兔", Species: pets.SpeciesRabbit},
	}
}

func TestFilterBySpeciesPreservaOrden(t *testing.T) {
	got := FilterBySpecies(samplePets(), "dog")

	ids := make([]int64, 0, len(got))
	for _, p := range got {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int64{1, 3}, ids)
}

func TestFilterBySpeciesAllDevuelveTodo(t *testing.T) {
	list := samplePets()

	assert.Len(t, FilterBySpecies(list, "all"), 4)
	assert.Len(t, FilterBySpecies(list, ""), 4)
	assert.Empty(t, FilterBySpecies(list, "hamster"))
}

func TestCatalogReplaceYFiltered(t *testing.T) {
	c := NewCatalog()
	c.Replace(samplePets())

	assert.Len(t, c.Pets(), 4)
	assert.Len(t, c.Filtered("cat"), 1)

	p, ok := c.ByID(3)
	assert.True(t, ok)
	assert.Equal(t, "查理", p.Name)

	_, ok = c.ByID(99)
	assert.False(t, ok)
}

func TestCatalogUpsertLocal(t *testing.T) {
	c := NewCatalog()
	c.Replace(samplePets())

	// editar existente
	c.UpsertLocal(pets.Pet{ID: 2, Name: "露娜二", Species: pets.SpeciesCat})
	p, _ := c.ByID(2)
	assert.Equal(t, "露娜二", p.Name)
	assert.Len(t, c.Pets(), 4)

	// insertar nuevo mantiene orden por id
	c.UpsertLocal(pets.Pet{ID: 7, Name: "新来的", Species: pets.SpeciesDog})
	list := c.Pets()
	assert.Equal(t, int64(7), list[len(list)-1].ID)
}

func TestCatalogRemoveLocal(t *testing.T) {
	c := NewCatalog()
	c.Replace(samplePets())

	c.RemoveLocal(2)

	assert.Len(t, c.Pets(), 3)
	_, ok := c.ByID(2)
	assert.False(t, ok)
}

func TestCanManage(t *testing.T) {
	owner := Session{Token: "tok", UserID: "user-1"}
	other := Session{Token: "tok", UserID: "user-2"}
	anon := Session{}

	owned := pets.Pet{ID: 10, OwnerUserID: "user-1"}
	seeded := pets.Pet{ID: 1} // sin dueño: dato de demo

	assert.True(t, CanManage(owner, owned))
	assert.False(t, CanManage(other, owned))
	assert.False(t, CanManage(anon, owned))
	assert.False(t, CanManage(owner, seeded), "las mascotas de demo no se editan")
}
