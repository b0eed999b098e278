// Profiling:
// go build ./cmd/benchmark
// go tool pprof -http=":8000" ./benchmark mem.pprof
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/pkg/profile"

	"github.com/lixenwraith/tabula/component"
	"github.com/lixenwraith/tabula/engine"
)

var (
	entities = flag.Int("entities", 10000, "Entities per world")
	rounds   = flag.Int("rounds", 50, "Worlds to build and tear down")
	iters    = flag.Int("iters", 200, "Match passes per world")
	mode     = flag.String("profile", "mem", "Profile: cpu|mem|off")
)

func main() {
	flag.Parse()

	switch *mode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	start := time.Now()
	var mutations int64
	for r := 0; r < *rounds; r++ {
		mutations += run(*entities, *iters)
	}
	elapsed := time.Since(start)

	fmt.Printf("rounds=%d entities=%d iters=%d\n", *rounds, *entities, *iters)
	fmt.Printf("elapsed=%v mutations=%d rate=%.0f/s\n",
		elapsed, mutations, float64(mutations)/elapsed.Seconds())
}

func run(numEntities, iters int) int64 {
	w := engine.NewWorld()

	for i := 0; i < numEntities; i++ {
		e := w.NewEntity()
		engine.AddComponent(w, e, component.KineticComponent{X: float64(i), VX: 1})
		engine.AddComponent(w, e, component.HealthComponent{Current: i, Max: numEntities})
	}

	var mutations int64
	for i := 0; i < iters; i++ {
		kinetics, _ := engine.BorrowMut[component.KineticComponent](w)
		healths, _ := engine.BorrowMut[component.HealthComponent](w)

		engine.MatchMut2(kinetics, healths, func(e engine.Entity, k *component.KineticComponent, h *component.HealthComponent) {
			k.X += k.VX
			h.Current++
			mutations++
		})

		healths.Release()
		kinetics.Release()
	}
	return mutations
}
