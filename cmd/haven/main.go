// Command haven es el front-end de terminal del marketplace de adopción.
// Sin backend configurado corre en modo demo: catálogo seed de solo lectura.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"pet-haven/internal/client"
)

func main() {
	_ = godotenv.Load()

	gw := client.New(client.ConfigFromEnv())
	token := strings.TrimSpace(os.Getenv("PETHAVEN_TOKEN"))

	p := tea.NewProgram(newModel(gw, token), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "haven: %v\n", err)
		os.Exit(1)
	}
}
