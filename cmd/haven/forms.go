package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pet-haven/internal/app"
	"pet-haven/internal/domain/pets"
)

type formKind int

const (
	formAuth formKind = iota
	formAdopt
	formPet
	formPost
)

// formModel es el form genérico de los overlays: una columna de inputs con
// foco navegable. Submit valida y devuelve el input ya tipado.
type formModel struct {
	kind   formKind
	labels []string
	inputs []textinput.Model
	focus  int

	// formAuth: alterna entre iniciar sesión y registrarse
	signUpMode bool

	// formAdopt / formPet (edición): entidad objetivo
	pet *pets.Pet

	errMsg string
}

func newAuthForm() *formModel {
	email := textinput.New()
	email.Placeholder = "correo"
	email.CharLimit = 120
	email.Focus()

	pass := textinput.New()
	pass.Placeholder = "contraseña"
	pass.CharLimit = 120
	pass.EchoMode = textinput.EchoPassword

	return &formModel{
		kind:   formAuth,
		labels: []string{"Email", "Contraseña"},
		inputs: []textinput.Model{email, pass},
	}
}

func newAdoptForm(p *pets.Pet) *formModel {
	contact := textinput.New()
	contact.Placeholder = "teléfono o wechat"
	contact.CharLimit = 120
	contact.Focus()

	msg := textinput.New()
	msg.Placeholder = "contanos por qué querés adoptar"
	msg.CharLimit = 500

	return &formModel{
		kind:   formAdopt,
		labels: []string{"Contacto", "Mensaje"},
		inputs: []textinput.Model{contact, msg},
		pet:    p,
	}
}

// newPetForm arma el form de publicación. Con pet existente precarga los
// campos (edición).
func newPetForm(p *pets.Pet) *formModel {
	mk := func(placeholder string, limit int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		return in
	}

	inputs := []textinput.Model{
		mk("nombre", 80),
		mk("dog / cat / rabbit", 10),
		mk("raza", 80),
		mk("edad (ej: 2岁)", 40),
		mk("url de la foto", 300),
		mk("descripción", 500),
		mk("tags separados por coma", 200),
		mk("contacto", 120),
	}

	if p != nil {
		inputs[0].SetValue(p.Name)
		inputs[1].SetValue(string(p.Species))
		inputs[2].SetValue(p.Breed)
		inputs[3].SetValue(p.Age)
		inputs[4].SetValue(p.ImageURL)
		inputs[5].SetValue(p.Description)
		inputs[6].SetValue(strings.Join(p.Tags, ", "))
		inputs[7].SetValue(p.Contact)
	}
	inputs[0].Focus()

	return &formModel{
		kind:   formPet,
		labels: []string{"Nombre", "Especie", "Raza", "Edad", "Foto", "Descripción", "Tags", "Contacto"},
		inputs: inputs,
		pet:    p,
	}
}

func newPostForm() *formModel {
	title := textinput.New()
	title.Placeholder = "título"
	title.CharLimit = 120
	title.Focus()

	content := textinput.New()
	content.Placeholder = "contenido"
	content.CharLimit = 1000

	return &formModel{
		kind:   formPost,
		labels: []string{"Título", "Contenido"},
		inputs: []textinput.Model{title, content},
	}
}

func (f *formModel) update(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(f.inputs))
	for i := range f.inputs {
		f.inputs[i], cmds[i] = f.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

func (f *formModel) nextField() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *formModel) prevField() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *formModel) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// adoptInput valida y devuelve el form de adopción tipado.
func (f *formModel) adoptInput() (app.AdoptionForm, error) {
	in := app.AdoptionForm{
		ContactInfo: f.value(0),
		Message:     f.value(1),
	}
	return in, in.Validate()
}

func (f *formModel) petInput() (app.PetForm, error) {
	in := app.PetForm{
		Name:        f.value(0),
		Species:     f.value(1),
		Breed:       f.value(2),
		Age:         f.value(3),
		ImageURL:    f.value(4),
		Description: f.value(5),
		Tags:        f.value(6),
		Contact:     f.value(7),
	}
	return in, in.Validate()
}

func (f *formModel) postInput() (app.PostForm, error) {
	in := app.PostForm{
		Title:   f.value(0),
		Content: f.value(1),
	}
	return in, in.Validate()
}
