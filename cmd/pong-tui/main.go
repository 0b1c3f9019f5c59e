package main

import (
	"flag"
	"fmt"
	"log"

	"pong/internal/pong"
	"pong/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	cfg := pong.DefaultConfig()
	flag.StringVar(&cfg.Player1Name, "p1", cfg.Player1Name, "name of the left player (w/s)")
	flag.StringVar(&cfg.Player2Name, "p2", cfg.Player2Name, "name of the right player (up/down)")
	flag.IntVar(&cfg.WinScore, "win", cfg.WinScore, "points needed to win")
	record := flag.Bool("record", true, "save the result of a finished match")
	flag.Parse()

	m, err := tui.New(cfg, tui.Options{RecordResults: *record})
	if err != nil {
		log.Fatal(err)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
	if w := m.Winner(); w != "" {
		fmt.Printf("Game over! %s wins!\n", w)
	}
}
