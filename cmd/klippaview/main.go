// Command klippaview is an interactive terminal viewer for rectangle
// clipping. Start it bare and paste WKT with p, or pass a file holding
// one WKT geometry:
//
//	klippaview shapes.wkt
package main

import (
	"flag"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/klippa-geo/klippa/internal/tui"
)

func main() {
	flag.Parse()

	m := tui.New()
	if flag.NArg() > 0 {
		data, err := os.ReadFile(flag.Arg(0))
		if err != nil {
			log.Fatalf("Failed to read %s: %v", flag.Arg(0), err)
		}
		m, err = tui.NewWithWKT(string(data))
		if err != nil {
			log.Fatalf("Bad WKT in %s: %v", flag.Arg(0), err)
		}
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
