package main

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"pet-haven/internal/app"
	"pet-haven/internal/client"
	"pet-haven/internal/domain/pets"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// confirmación de borrado pendiente: solo y/n
		if m.confirm != nil {
			return m.updateConfirm(msg)
		}
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m.updateBrowse(msg)

	case petsLoadedMsg:
		m.catalog.Replace(msg)
		return m.clampCursor(), nil

	case postsLoadedMsg:
		m.board.Replace(msg)
		return m.clampCursor(), nil

	case favoritesLoadedMsg:
		return m, nil

	case favToggledMsg:
		return m, nil

	case signedInMsg:
		m.sess.Set(app.Session{Token: msg.AccessToken, UserID: msg.UserID, Email: msg.Email})
		m.overlays.AuthSucceeded()
		m.form = nil
		m = m.ok("sesión iniciada como " + msg.Email)
		return m, m.refreshFavorites()

	case sessionRestoredMsg:
		if msg.claims == nil {
			return m, nil
		}
		m.sess.Set(app.Session{Token: msg.token, UserID: msg.claims.UserID, Email: msg.claims.Email})
		return m.ok("sesión restaurada: " + msg.claims.Email), m.refreshFavorites()

	case signedUpMsg:
		// el proveedor manda el mail de verificación; no hay auto-login
		if m.form != nil && m.form.kind == formAuth {
			m.form.signUpMode = false
			m.form.errMsg = ""
		}
		return m.ok("cuenta creada: verificá tu correo y después iniciá sesión"), nil

	case signedOutMsg:
		// limpiar la sesión también vacía el set de favoritos (suscripción)
		m.sess.Clear()
		return m.ok("sesión cerrada"), nil

	case petSavedMsg:
		// feedback inmediato y refetch autoritativo
		m.catalog.UpsertLocal(pets.Pet(msg))
		m.overlays.Submitted()
		m.form = nil
		return m.ok("mascota guardada: " + msg.Name), m.loadPets()

	case petDeletedMsg:
		m.catalog.RemoveLocal(int64(msg))
		return m.clampCursor().ok("publicación eliminada"), m.loadPets()

	case postSavedMsg:
		m.overlays.Submitted()
		m.form = nil
		// el orden lo decide el backend, refetch
		return m.ok("publicado en el tablón"), m.loadPosts()

	case postDeletedMsg:
		m.board.RemoveLocal(int64(msg))
		return m.clampCursor().ok("post eliminado"), nil

	case applicationSentMsg:
		m.overlays.Submitted()
		m.form = nil
		return m.ok("solicitud enviada para " + msg.petName), nil

	case errMsg:
		return m.fail(msg.err), nil
	}

	return m, nil
}

func (m model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab":
		if m.tab == tabCatalog {
			m.tab = tabCommunity
		} else {
			m.tab = tabCatalog
		}
		m.cursor = 0
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		m.cursor++
		return m.clampCursor(), nil

	case "r":
		return m, tea.Batch(m.loadPets(), m.loadPosts())

	case "s":
		if m.tab == tabCatalog {
			m.filterIdx = (m.filterIdx + 1) % len(speciesCycle)
			m.cursor = 0
		}
		return m, nil

	case "l":
		if m.sess.Current().Authenticated() {
			return m, m.signOut()
		}
		m.overlays.OpenAuth()
		m.form = newAuthForm()
		return m, nil

	case "f":
		if m.tab != tabCatalog {
			return m, nil
		}
		p, ok := m.selectedPet()
		if !ok {
			return m, nil
		}
		if !m.sess.Current().Authenticated() {
			m.overlays.OpenAuth()
			m.form = newAuthForm()
			return m.info("iniciá sesión para marcar favoritos"), nil
		}
		return m, m.toggleFavorite(p.ID)

	case "enter", "a":
		if m.tab != tabCatalog {
			return m, nil
		}
		p, ok := m.selectedPet()
		if !ok {
			return m, nil
		}
		m.overlays.RequestAdopt(p)
		if m.overlays.Current().Kind == app.OverlayAuth {
			m.form = newAuthForm()
			return m.info("iniciá sesión para solicitar la adopción"), nil
		}
		m.form = newAdoptForm(m.overlays.Current().Pet)
		return m, nil

	case "n":
		if !m.sess.Current().Authenticated() {
			m.overlays.OpenAuth()
			m.form = newAuthForm()
			return m.info("iniciá sesión para publicar"), nil
		}
		if m.tab == tabCatalog {
			m.overlays.OpenPetForm(nil)
			m.form = newPetForm(nil)
		} else {
			m.form = newPostForm()
		}
		return m, nil

	case "e":
		if m.tab != tabCatalog {
			return m, nil
		}
		p, ok := m.selectedPet()
		if !ok || !app.CanManage(m.sess.Current(), p) {
			return m.info("solo podés editar tus propias publicaciones"), nil
		}
		m.overlays.OpenPetForm(&p)
		m.form = newPetForm(&p)
		return m, nil

	case "d":
		if m.tab == tabCatalog {
			p, ok := m.selectedPet()
			if !ok || !app.CanManage(m.sess.Current(), p) {
				return m.info("solo podés borrar tus propias publicaciones"), nil
			}
			m.confirm = &pendingDelete{id: p.ID, name: p.Name}
			return m, nil
		}
		posts := m.board.Posts()
		if m.cursor >= len(posts) {
			return m, nil
		}
		post := posts[m.cursor]
		if !app.CanDelete(m.sess.Current(), post) {
			return m.info("solo el autor puede borrar el post"), nil
		}
		m.confirm = &pendingDelete{isPost: true, id: post.ID, name: post.Title}
		return m, nil
	}

	return m, nil
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		c := *m.confirm
		m.confirm = nil
		if c.isPost {
			return m, m.deletePost(c.id)
		}
		return m, m.deletePet(c.id)
	case "n", "N", "esc":
		m.confirm = nil
		return m, nil
	}
	return m, nil
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.overlays.Close()
		m.form = nil
		return m, nil

	case "tab", "down":
		m.form.nextField()
		return m, nil

	case "shift+tab", "up":
		m.form.prevField()
		return m, nil

	case "ctrl+r":
		// en el form de auth alterna registro / inicio de sesión
		if m.form.kind == formAuth {
			m.form.signUpMode = !m.form.signUpMode
			m.form.errMsg = ""
		}
		return m, nil

	case "enter":
		return m.submitForm()
	}

	return m, m.form.update(msg)
}

func (m model) submitForm() (tea.Model, tea.Cmd) {
	f := m.form

	switch f.kind {
	case formAuth:
		email, password := f.value(0), f.value(1)
		if email == "" || password == "" {
			f.errMsg = "completá email y contraseña"
			return m, nil
		}
		if f.signUpMode {
			return m, m.signUp(email, password)
		}
		return m, m.signIn(email, password)

	case formAdopt:
		in, err := f.adoptInput()
		if err != nil {
			f.errMsg = "completá contacto y mensaje"
			return m, nil
		}
		return m, m.submitApplication(f.pet, in)

	case formPet:
		in, err := f.petInput()
		if err != nil {
			f.errMsg = "faltan campos o la especie no es dog/cat/rabbit"
			return m, nil
		}
		return m, m.savePet(f.pet, in)

	case formPost:
		in, err := f.postInput()
		if err != nil {
			f.errMsg = "completá título y contenido"
			return m, nil
		}
		return m, m.savePost(in)
	}

	return m, nil
}

// ---- helpers ----

func (m model) selectedPet() (pets.Pet, bool) {
	list := m.visiblePets()
	if m.cursor >= len(list) {
		return pets.Pet{}, false
	}
	return list[m.cursor], true
}

func (m model) ok(s string) model {
	m.status = s
	m.statusOK = true
	return m
}

func (m model) info(s string) model {
	m.status = s
	m.statusOK = true
	return m
}

func (m model) fail(err error) model {
	var rerr *client.RemoteError
	switch {
	case errors.Is(err, app.ErrAuthRequired):
		m.status = "necesitás iniciar sesión"
	case errors.Is(err, client.ErrNotConfigured):
		m.status = "modo demo: configurá PETHAVEN_API_URL y PETHAVEN_API_KEY para escribir"
	case errors.As(err, &rerr):
		m.status = rerr.Message
	default:
		m.status = err.Error()
	}
	m.statusOK = false
	return m
}
