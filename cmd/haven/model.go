package main

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pet-haven/internal/app"
	"pet-haven/internal/client"
	"pet-haven/internal/domain/pets"
	"pet-haven/internal/domain/posts"
	"pet-haven/internal/ports/auth"
)

const requestTimeout = 10 * time.Second

type tab int

const (
	tabCatalog tab = iota
	tabCommunity
)

// speciesCycle es el orden del filtro al apretar "s".
var speciesCycle = []string{"all", "dog", "cat", "rabbit"}

type pendingDelete struct {
	isPost bool
	id     int64
	name   string
}

type model struct {
	gw       *client.Gateway
	sess     *app.SessionStore
	favs     *app.FavoritesController
	overlays *app.OverlayController
	catalog  *app.Catalog
	board    *app.Board

	tab       tab
	cursor    int
	filterIdx int

	form    *formModel
	confirm *pendingDelete

	status   string
	statusOK bool

	width  int
	height int

	// token previo (PETHAVEN_TOKEN) a validar contra el backend al arrancar
	restoreToken string

	st styles
}

func newModel(gw *client.Gateway, restoreToken string) model {
	sess := app.NewSessionStore()
	return model{
		gw:           gw,
		restoreToken: restoreToken,
		sess:         sess,
		favs:         app.NewFavoritesController(gw, sess),
		overlays:     app.NewOverlayController(sess),
		catalog:      app.NewCatalog(),
		board:        app.NewBoard(),
		st:           defaultStyles(),
	}
}

// ---- messages ----

type petsLoadedMsg []pets.Pet
type postsLoadedMsg []posts.Post
type favoritesLoadedMsg struct{}
type favToggledMsg struct{ petID int64 }
type signedInMsg auth.Session
type sessionRestoredMsg struct {
	token  string
	claims *auth.Claims
}
type signedUpMsg struct{}
type signedOutMsg struct{}
type petSavedMsg pets.Pet
type petDeletedMsg int64
type postSavedMsg posts.Post
type postDeletedMsg int64
type applicationSentMsg struct{ petName string }
type errMsg struct{ err error }

// ---- commands ----

func (m model) loadPets() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		list, err := m.gw.ListPets(ctx)
		if err != nil {
			return errMsg{err}
		}
		return petsLoadedMsg(list)
	}
}

func (m model) loadPosts() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		list, err := m.gw.ListPosts(ctx)
		if err != nil {
			if errors.Is(err, client.ErrNotConfigured) {
				return postsLoadedMsg(nil)
			}
			return errMsg{err}
		}
		return postsLoadedMsg(list)
	}
}

func (m model) refreshFavorites() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := m.favs.Refresh(ctx); err != nil {
			return errMsg{err}
		}
		return favoritesLoadedMsg{}
	}
}

func (m model) toggleFavorite(petID int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if _, err := m.favs.Toggle(ctx, petID); err != nil {
			return errMsg{err}
		}
		return favToggledMsg{petID}
	}
}

func (m model) signIn(email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		sess, err := m.gw.SignIn(ctx, email, password)
		if err != nil {
			return errMsg{err}
		}
		return signedInMsg(sess)
	}
}

func (m model) signUp(email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := m.gw.SignUp(ctx, email, password); err != nil {
			return errMsg{err}
		}
		return signedUpMsg{}
	}
}

func (m model) signOut() tea.Cmd {
	token := m.sess.Current().Token
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		// best effort: la sesión local se limpia igual
		_ = m.gw.SignOut(ctx, token)
		return signedOutMsg{}
	}
}

func (m model) savePet(target *pets.Pet, in app.PetForm) tea.Cmd {
	token := m.sess.Current().Token
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		input := client.PetInput{
			Name:        in.Name,
			Species:     in.Species,
			Breed:       in.Breed,
			Age:         in.Age,
			ImageURL:    in.ImageURL,
			Description: in.Description,
			Tags:        app.SplitTags(in.Tags),
			Contact:     in.Contact,
		}

		var (
			p   pets.Pet
			err error
		)
		if target == nil {
			p, err = m.gw.InsertPet(ctx, token, input)
		} else {
			p, err = m.gw.UpdatePet(ctx, token, target.ID, input)
		}
		if err != nil {
			return errMsg{err}
		}
		return petSavedMsg(p)
	}
}

func (m model) deletePet(id int64) tea.Cmd {
	token := m.sess.Current().Token
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := m.gw.DeletePet(ctx, token, id); err != nil {
			return errMsg{err}
		}
		return petDeletedMsg(id)
	}
}

func (m model) submitApplication(p *pets.Pet, in app.AdoptionForm) tea.Cmd {
	token := m.sess.Current().Token
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		err := m.gw.InsertApplication(ctx, token, client.ApplicationInput{
			PetID:       p.ID,
			Message:     in.Message,
			ContactInfo: in.ContactInfo,
		})
		if err != nil {
			return errMsg{err}
		}
		return applicationSentMsg{petName: p.Name}
	}
}

func (m model) savePost(in app.PostForm) tea.Cmd {
	token := m.sess.Current().Token
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		p, err := m.gw.InsertPost(ctx, token, in.Title, in.Content)
		if err != nil {
			return errMsg{err}
		}
		return postSavedMsg(p)
	}
}

func (m model) deletePost(id int64) tea.Cmd {
	token := m.sess.Current().Token
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := m.gw.DeletePost(ctx, token, id); err != nil {
			return errMsg{err}
		}
		return postDeletedMsg(id)
	}
}

// ---- tea.Model ----

// restoreSession valida el token guardado contra /auth/session. Un token
// vencido o un backend sin configurar no son errores: se queda anónimo.
func (m model) restoreSession(token string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		claims, err := m.gw.Session(ctx, token)
		if err != nil || claims == nil {
			return sessionRestoredMsg{}
		}
		return sessionRestoredMsg{token: token, claims: claims}
	}
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadPets(), m.loadPosts()}
	if m.restoreToken != "" {
		cmds = append(cmds, m.restoreSession(m.restoreToken))
	}
	return tea.Batch(cmds...)
}

func (m model) visiblePets() []pets.Pet {
	return m.catalog.Filtered(speciesCycle[m.filterIdx])
}

func (m model) clampCursor() model {
	var n int
	if m.tab == tabCatalog {
		n = len(m.visiblePets())
	} else {
		n = len(m.board.Posts())
	}
	if n == 0 {
		m.cursor = 0
	} else if m.cursor >= n {
		m.cursor = n - 1
	}
	return m
}
