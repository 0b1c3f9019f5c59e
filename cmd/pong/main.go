package main

import (
	"flag"
	"fmt"
	"log"

	"pong/internal/game"
	"pong/internal/pong"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := pong.DefaultConfig()
	flag.StringVar(&cfg.Player1Name, "p1", cfg.Player1Name, "name of the left player (W/S)")
	flag.StringVar(&cfg.Player2Name, "p2", cfg.Player2Name, "name of the right player (Up/Down)")
	flag.IntVar(&cfg.WinScore, "win", cfg.WinScore, "points needed to win")
	scale := flag.Float64("scale", 0, "window scale (0 fits the screen)")
	record := flag.Bool("record", true, "save the result of a finished match")
	flag.Parse()

	s := *scale
	if s <= 0 {
		sw, sh := ebiten.ScreenSizeInFullscreen()
		s = game.FitScale(sw, sh, cfg.Width, cfg.Height)
	}
	g, err := game.New(cfg, game.Options{Scale: s, RecordResults: *record})
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowTitle("Pong Game")
	ebiten.SetWindowResizable(false)
	ebiten.SetWindowSize(g.ScreenWidth(), g.ScreenHeight())
	ebiten.SetTPS(g.TPS())
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
	if w := g.Winner(); w != "" {
		fmt.Printf("Game over! %s wins!\n", w)
	}
}
