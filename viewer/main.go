// Command viewer displays a rendered frame in a desktop window.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/dmw7/go-raycast-renderer/pkg/renderer"
	"github.com/dmw7/go-raycast-renderer/pkg/scene"
)

type game struct {
	rt     *renderer.Renderer
	width  int
	height int
	frame  *ebiten.Image
}

func (g *game) Update() error {
	return nil
}

// Draw renders the frame on first use and blits it to the screen. The scene
// is immutable, so a single render serves every display frame.
func (g *game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		img, stats := g.rt.RenderFrameParallel()
		g.frame = ebiten.NewImageFromImage(img)
		log.Printf("Rendered %dx%d in %v (%d hit, %d sky)",
			g.width, g.height, stats.RenderTime, stats.HitPixels, stats.MissPixels)
	}
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'row'")
	width := flag.Int("width", 800, "Window width in pixels")
	height := flag.Int("height", 450, "Window height in pixels")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	flag.Parse()

	var selectedScene *scene.Scene
	switch *sceneType {
	case "row":
		selectedScene = scene.NewRowScene()
	case "default":
		selectedScene = scene.NewDefaultScene()
	default:
		log.Fatalf("Unknown scene type: %s", *sceneType)
	}

	rt, err := renderer.NewRenderer(selectedScene, *width, *height)
	if err != nil {
		log.Fatalf("Error creating renderer: %v", err)
	}
	rt.SetWorkers(*workers)

	ebiten.SetWindowTitle(fmt.Sprintf("Raycast Renderer (%s)", *sceneType))
	ebiten.SetWindowSize(*width, *height)

	if err := ebiten.RunGame(&game{rt: rt, width: *width, height: *height}); err != nil {
		log.Fatalf("Viewer error: %v", err)
	}
}
