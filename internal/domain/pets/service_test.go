package pets

import (
	"context"
	"errors"
	"testing"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID   map[int64]Pet
	nextID int64
}

func newTestRepo(seed ...Pet) *testRepo {
	r := &testRepo{byID: map[int64]Pet{}, nextID: 1}
	for _, p := range seed {
		r.byID[p.ID] = p
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}
	return r
}

func (r *testRepo) Create(ctx context.Context, p Pet) (Pet, error) {
	p.ID = r.nextID
	r.nextID++
	r.byID[p.ID] = p
	return p, nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) List(ctx context.Context) ([]Pet, error) {
	out := make([]Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func validInput() PublishInput {
	return PublishInput{
		Name:        "小白",
		Species:     "dog",
		Breed:       "柴犬",
		Age:         "2岁",
		ImageURL:    "https://example.com/p.jpg",
		Description: "很乖",
		Tags:        []string{"友好", " 活泼 ", "  "},
		Contact:     "139-0000",
	}
}

func TestPublish_NormalizaTags(t *testing.T) {
	svc := NewService(newTestRepo())

	p, err := svc.Publish(context.Background(), "owner-1", validInput())
	if err != nil {
		t.Fatalf("publish: %v", err)
	}

	if len(p.Tags) != 2 || p.Tags[0] != "友好" || p.Tags[1] != "活泼" {
		t.Fatalf("expected tags [友好 活泼], got %v", p.Tags)
	}
	if p.OwnerUserID != "owner-1" {
		t.Fatalf("expected owner owner-1, got %q", p.OwnerUserID)
	}
	if p.CreatedAt.IsZero() || !p.CreatedAt.Equal(p.UpdatedAt) {
		t.Fatalf("expected created_at == updated_at on publish")
	}
}

func TestPublish_RechazaInputInvalido(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	in := validInput()
	in.Species = "hamster"
	if _, err := svc.Publish(ctx, "owner-1", in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown species, got %v", err)
	}

	in = validInput()
	in.Name = "   "
	if _, err := svc.Publish(ctx, "owner-1", in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}

	if _, err := svc.Publish(ctx, "", validInput()); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without owner, got %v", err)
	}
}

func TestUpdate_SoloElDueno(t *testing.T) {
	svc := NewService(newTestRepo(
		Pet{ID: 1, Name: "贝拉", Species: SpeciesDog}, // seed, sin dueño
		Pet{ID: 7, OwnerUserID: "owner-1", Name: "小白", Species: SpeciesDog},
	))
	ctx := context.Background()

	// seed no se edita
	if _, err := svc.Update(ctx, 1, "owner-1", validInput()); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden editing seed pet, got %v", err)
	}

	// otro usuario no edita
	if _, err := svc.Update(ctx, 7, "other-1", validInput()); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}

	// inexistente => not found
	if _, err := svc.Update(ctx, 99, "owner-1", validInput()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// el dueño sí, y es reemplazo completo
	in := validInput()
	in.Name = "小白二号"
	in.Tags = []string{"温顺"}
	p, err := svc.Update(ctx, 7, "owner-1", in)
	if err != nil {
		t.Fatalf("update by owner: %v", err)
	}
	if p.Name != "小白二号" || len(p.Tags) != 1 || p.Tags[0] != "温顺" {
		t.Fatalf("update not applied: %+v", p)
	}
	if p.OwnerUserID != "owner-1" {
		t.Fatalf("owner must not change on update, got %q", p.OwnerUserID)
	}
}

func TestDelete_SoloElDueno(t *testing.T) {
	svc := NewService(newTestRepo(
		Pet{ID: 1, Name: "贝拉", Species: SpeciesDog},
		Pet{ID: 7, OwnerUserID: "owner-1", Name: "小白", Species: SpeciesDog},
	))
	ctx := context.Background()

	if err := svc.Delete(ctx, 1, "owner-1"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden deleting seed pet, got %v", err)
	}
	if err := svc.Delete(ctx, 7, "other-1"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
	if err := svc.Delete(ctx, 7, "owner-1"); err != nil {
		t.Fatalf("delete by owner: %v", err)
	}
	if err := svc.Delete(ctx, 7, "owner-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting twice, got %v", err)
	}
}

func TestExists(t *testing.T) {
	svc := NewService(newTestRepo(Pet{ID: 3, Name: "查理", Species: SpeciesDog}))
	ctx := context.Background()

	ok, err := svc.Exists(ctx, 3)
	if err != nil || !ok {
		t.Fatalf("expected pet 3 to exist, ok=%v err=%v", ok, err)
	}
	ok, err = svc.Exists(ctx, 99)
	if err != nil || ok {
		t.Fatalf("expected pet 99 to not exist, ok=%v err=%v", ok, err)
	}
}

// Un fallo real del repo (DB caída) no es "no existe": debe propagarse.
type failingRepo struct {
	*testRepo
	err error
}

func (r *failingRepo) GetByID(ctx context.Context, id int64) (Pet, error) {
	return Pet{}, r.err
}

func TestExists_PropagaErroresDelRepo(t *testing.T) {
	errDB := errors.New("db: connection refused")
	svc := NewService(&failingRepo{testRepo: newTestRepo(), err: errDB})

	ok, err := svc.Exists(context.Background(), 1)
	if !errors.Is(err, errDB) {
		t.Fatalf("expected repo error to propagate, got ok=%v err=%v", ok, err)
	}
	if ok {
		t.Fatalf("expected ok=false on repo failure")
	}
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{" a ", "", "b", "  "})
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("expected [a b], got %v", got)
	}
}

func TestParseSpecies(t *testing.T) {
	for _, s := range []string{"dog", "cat", "rabbit"} {
		if _, ok := ParseSpecies(s); !ok {
			t.Fatalf("expected %q to parse", s)
		}
	}
	if _, ok := ParseSpecies("hamster"); ok {
		t.Fatalf("expected hamster to be rejected")
	}
}
