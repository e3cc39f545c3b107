package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/backdrop/audio"
	backend "github.com/plus3/backdrop/backend/ebiten"
	"github.com/plus3/backdrop/debugui"
	"github.com/plus3/backdrop/field"
	"github.com/plus3/backdrop/page"
)

const (
	screenWidth  = 1280
	screenHeight = 720
	title        = "Portfolio"
)

func main() {
	particles := flag.Int("particles", 80, "The number of particles in the backdrop.")
	distance := flag.Float64("distance", 150, "The maximum distance at which particles are connected.")
	pointerRadius := flag.Float64("pointer-radius", 150, "The radius around the pointer that repels particles.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug overlay.")
	mute := flag.Bool("mute", false, "Do not play the easter egg chime.")
	flag.Parse()

	fieldConfig := field.DefaultConfig()
	fieldConfig.ParticleCount = *particles
	fieldConfig.ConnectionDistance = *distance
	fieldConfig.PointerRadius = *pointerRadius

	var overlay *debugui.Overlay
	if *debug {
		// The ImGui backend creates the window itself.
		overlay = debugui.NewOverlay(title, screenWidth, screenHeight)
	} else {
		ebiten.SetWindowSize(screenWidth, screenHeight)
		ebiten.SetWindowTitle(title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := backend.NewGame(screenWidth, screenHeight, fieldConfig, page.DefaultConfig())

	if overlay != nil {
		overlay.Add(debugui.NewFieldWindow(game.Field, 120))
		overlay.Add(debugui.NewLoopWindow(game.Loop, 120))
		game.Overlay = overlay
	}

	if !*mute {
		chime := audio.NewChime(audio.DefaultSampleRate)
		if err := chime.Init(); err != nil {
			// Non-fatal, the page works without sound.
			log.Printf("Audio initialization failed: %v", err)
		} else {
			game.Page.OnEasterEgg = func() {
				if err := chime.Play(); err != nil {
					log.Printf("Chime failed: %v", err)
				}
			}
		}
	}

	log.Printf("Starting backdrop with %d particles", fieldConfig.ParticleCount)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
