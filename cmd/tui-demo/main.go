package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/tabula/component"
	"github.com/lixenwraith/tabula/engine"
)

var (
	entityCount = flag.Int("entities", 24, "Number of wandering entities")
	tick        = flag.Duration("tick", 33*time.Millisecond, "Simulation tick interval")
)

const sampleRate = beep.SampleRate(44100)

// boundsResource tracks the usable screen area, updated on resize
type boundsResource struct {
	Width  int
	Height int
}

// clockResource carries per-tick timing into systems
type clockResource struct {
	Delta time.Duration
	Frame int64
}

type demoAudio struct {
	ready bool
}

func newDemoAudio() *demoAudio {
	a := &demoAudio{}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		// Non-fatal, demo can run without sound
		log.Printf("Audio initialization failed: %v", err)
		return a
	}
	a.ready = true
	return a
}

// playBounce emits a short blip when an entity hits a wall
func (a *demoAudio) playBounce() {
	if !a.ready {
		return
	}
	sine, _ := generators.SineTone(sampleRate, 880)
	speaker.Play(beep.Take(sampleRate.N(40*time.Millisecond), sine))
}

func glyphStyle(h component.GlyphHue) tcell.Style {
	switch h {
	case component.HueGreen:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case component.HueBlue:
		return tcell.StyleDefault.Foreground(tcell.ColorBlue)
	case component.HueYellow:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	}
}

func spawnEntities(w *engine.World, n, width, height int) {
	runes := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

	for i := 0; i < n; i++ {
		maxHealth := 40 + rand.Intn(60)
		engine.With(engine.With(engine.With(w.Spawn(),
			component.GlyphComponent{Rune: runes[rand.Intn(len(runes))], Hue: component.HueGreen}),
			component.KineticComponent{
				X:  rand.Float64() * float64(width),
				Y:  rand.Float64() * float64(height),
				VX: (rand.Float64() - 0.5) * 24,
				VY: (rand.Float64() - 0.5) * 12,
			}),
			component.HealthComponent{Current: maxHealth, Max: maxHealth}).
			Build()
	}
}

// moveSystem integrates positions and bounces entities off the walls
func moveSystem(audio *demoAudio) engine.System {
	return func(w *engine.World) {
		bounds := engine.MustGetResource[*boundsResource](w.Resources)
		clock := engine.MustGetResource[*clockResource](w.Resources)
		dt := clock.Delta.Seconds()

		kinetics, ok := engine.BorrowMut[component.KineticComponent](w)
		if !ok {
			return
		}
		defer kinetics.Release()

		bounced := false
		kinetics.EachPtr(func(e engine.Entity, k *component.KineticComponent) {
			k.X += k.VX * dt
			k.Y += k.VY * dt

			if k.X < 0 {
				k.X, k.VX = 0, -k.VX
				bounced = true
			} else if k.X > float64(bounds.Width-1) {
				k.X, k.VX = float64(bounds.Width-1), -k.VX
				bounced = true
			}
			if k.Y < 0 {
				k.Y, k.VY = 0, -k.VY
				bounced = true
			} else if k.Y > float64(bounds.Height-1) {
				k.Y, k.VY = float64(bounds.Height-1), -k.VY
				bounced = true
			}
		})

		// One blip per tick regardless of how many entities bounced
		if bounced {
			audio.playBounce()
		}
	}
}

// decaySystem drains health each tick and recolors the glyph by the
// remaining fraction; empty health refreshes back to max
func decaySystem(w *engine.World) {
	healths, ok := engine.BorrowMut[component.HealthComponent](w)
	if !ok {
		return
	}
	defer healths.Release()

	glyphs, ok := engine.BorrowMut[component.GlyphComponent](w)
	if !ok {
		return
	}
	defer glyphs.Release()

	engine.MatchMut2(healths, glyphs, func(e engine.Entity, h *component.HealthComponent, g *component.GlyphComponent) {
		h.Current--
		if h.Current <= 0 {
			h.Current = h.Max
		}

		switch ratio := float64(h.Current) / float64(h.Max); {
		case ratio > 0.75:
			g.Hue = component.HueGreen
		case ratio > 0.5:
			g.Hue = component.HueBlue
		case ratio > 0.25:
			g.Hue = component.HueYellow
		default:
			g.Hue = component.HueRed
		}
	})
}

// renderSystem draws every entity that has both a glyph and a position
func renderSystem(screen tcell.Screen) engine.System {
	return func(w *engine.World) {
		clock := engine.MustGetResource[*clockResource](w.Resources)

		screen.Clear()

		glyphs, ok := engine.Borrow[component.GlyphComponent](w)
		if !ok {
			return
		}
		defer glyphs.Release()

		kinetics, ok := engine.Borrow[component.KineticComponent](w)
		if !ok {
			return
		}
		defer kinetics.Release()

		engine.Match2(glyphs, kinetics, func(e engine.Entity, g component.GlyphComponent, k component.KineticComponent) {
			screen.SetContent(int(k.X), int(k.Y), g.Rune, nil, glyphStyle(g.Hue))
		})

		status := fmt.Sprintf(" entities:%d columns:%d frame:%d  q to quit ",
			w.EntityCount(), len(w.ComponentTypes()), clock.Frame)
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
		for i, r := range status {
			screen.SetContent(i, 0, r, nil, style)
		}

		screen.Show()
	}
}

func main() {
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Screen creation failed: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Screen initialization failed: %v", err)
	}
	defer screen.Fini()

	audio := newDemoAudio()

	width, height := screen.Size()
	world := engine.NewWorld()
	bounds := &boundsResource{Width: width, Height: height}
	clock := &clockResource{Delta: *tick}
	engine.AddResource(world.Resources, bounds)
	engine.AddResource(world.Resources, clock)

	spawnEntities(world, *entityCount, width, height)

	systems := []engine.System{
		moveSystem(audio),
		decaySystem,
		renderSystem(screen),
	}

	// Dedicated input goroutine
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(*tick)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					screen.Fini()
					os.Exit(0)
				}
			case *tcell.EventResize:
				bounds.Width, bounds.Height = screen.Size()
				screen.Sync()
			}
		case <-ticker.C:
			clock.Frame++
			world.Update(systems)
		}
	}
}
