package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/vision-sweep/internal/view"
)

func main() {
	ebiten.SetWindowTitle("vision-sweep demo")
	ebiten.SetWindowResizable(true)
	if err := ebiten.RunGame(view.New()); err != nil {
		log.Fatal(err)
	}
}
