package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pet-haven/internal/app"
	"pet-haven/internal/domain/pets"
)

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	if m.form != nil {
		b.WriteString(m.viewForm())
	} else if m.tab == tabCatalog {
		b.WriteString(m.viewCatalog())
	} else {
		b.WriteString(m.viewBoard())
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m model) viewHeader() string {
	title := m.st.Title.Render("🐾 宠物之家 · Pet Haven")

	catalogTab := m.st.Tab.Render("领养大厅")
	boardTab := m.st.Tab.Render("互助社区")
	if m.tab == tabCatalog {
		catalogTab = m.st.TabOn.Render("领养大厅")
	} else {
		boardTab = m.st.TabOn.Render("互助社区")
	}

	who := m.st.Muted.Render("visitante")
	if s := m.sess.Current(); s.Authenticated() {
		who = m.st.Accent.Render(s.Email)
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, title, catalogTab, boardTab, "  ", who)
}

func (m model) viewCatalog() string {
	list := m.visiblePets()

	filter := speciesCycle[m.filterIdx]
	label := "全部"
	if sp, ok := pets.ParseSpecies(filter); ok {
		label = sp.Label()
	}
	head := m.st.Muted.Render(fmt.Sprintf("filtro [s]: %s · %d mascotas", label, len(list)))

	if len(list) == 0 {
		return head + "\n\n" + m.st.Muted.Render("  no hay mascotas para este filtro")
	}

	var cards []string
	for i, p := range list {
		cards = append(cards, m.viewPetCard(p, i == m.cursor))
	}
	return head + "\n" + strings.Join(cards, "\n")
}

func (m model) viewPetCard(p pets.Pet, selected bool) string {
	fav := " "
	if m.favs.Set().Has(p.ID) {
		fav = m.st.Error.Render("♥")
	}

	owner := ""
	if app.CanManage(m.sess.Current(), p) {
		owner = m.st.Accent.Render(" [tuya]")
	}

	line1 := fmt.Sprintf("%s %s · %s · %s · %s%s", fav, p.Name, p.Species.Label(), p.Breed, p.Age, owner)
	line2 := m.st.Muted.Render(p.Description)
	line3 := ""
	if len(p.Tags) > 0 {
		line3 = "\n" + m.st.Accent.Render("#"+strings.Join(p.Tags, " #"))
	}

	card := m.st.Card
	if selected {
		card = m.st.CardOn
	}
	return card.Render(line1 + "\n" + line2 + line3)
}

func (m model) viewBoard() string {
	list := m.board.Posts()
	if len(list) == 0 {
		return m.st.Muted.Render("  el tablón está vacío; [n] publica el primero")
	}

	var cards []string
	for i, p := range list {
		mine := ""
		if app.CanDelete(m.sess.Current(), p) {
			mine = m.st.Accent.Render(" [tuyo]")
		}
		head := fmt.Sprintf("%s%s · %s", p.Title, mine,
			m.st.Muted.Render(p.UserEmail+" · "+p.CreatedAt.Format("01-02 15:04")))

		card := m.st.Card
		if i == m.cursor {
			card = m.st.CardOn
		}
		cards = append(cards, card.Render(head+"\n"+p.Content))
	}
	return strings.Join(cards, "\n")
}

func (m model) viewForm() string {
	f := m.form

	title := map[formKind]string{
		formAuth:  "Iniciar sesión",
		formAdopt: "Solicitud de adopción",
		formPet:   "Publicar mascota",
		formPost:  "Nueva publicación",
	}[f.kind]

	if f.kind == formAuth && f.signUpMode {
		title = "Crear cuenta"
	}
	if f.kind == formAdopt && f.pet != nil {
		title += " · " + f.pet.Name
	}
	if f.kind == formPet && f.pet != nil {
		title = "Editar mascota · " + f.pet.Name
	}

	var b strings.Builder
	b.WriteString(m.st.Title.Render(title) + "\n\n")
	for i, in := range f.inputs {
		b.WriteString(m.st.FieldLbl.Render(f.labels[i]) + "\n")
		b.WriteString(in.View() + "\n")
	}

	if f.errMsg != "" {
		b.WriteString("\n" + m.st.Error.Render(f.errMsg))
	}

	hint := "[enter] enviar · [tab] siguiente campo · [esc] cancelar"
	if f.kind == formAuth {
		hint += " · [ctrl+r] registro/inicio"
	}
	b.WriteString("\n" + m.st.Muted.Render(hint))

	return m.st.Overlay.Render(b.String())
}

func (m model) viewFooter() string {
	if m.confirm != nil {
		return m.st.Error.Render(fmt.Sprintf("¿Borrar %q? [y/n]", m.confirm.name))
	}

	status := ""
	if m.status != "" {
		if m.statusOK {
			status = m.st.Success.Render(m.status)
		} else {
			status = m.st.Error.Render(m.status)
		}
	}

	keys := "[tab] sección · [↑↓] mover · [f] favorito · [a] adoptar · [n] publicar · [e] editar · [d] borrar · [s] filtro · [l] sesión · [r] recargar · [q] salir"
	return status + "\n" + m.st.Muted.Render(keys)
}
