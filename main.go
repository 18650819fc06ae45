package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/kmartin42/batflight/config"
)

func main() {
	display, err := config.LoadDisplay()
	if err != nil {
		log.Fatalf("load display config: %v", err)
	}

	ebiten.SetWindowSize(display.Width, display.Height)
	ebiten.SetWindowTitle(display.Title)

	game := NewGame(display)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("run: %v", err)
	}
	if err := game.Close(); err != nil {
		log.Printf("close: %v", err)
	}
}
