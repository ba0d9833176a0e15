//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strconv"

	"isle-gen/internal/app"
	"isle-gen/internal/core"
	_ "isle-gen/internal/island"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	gen := flag.String("gen", "island", "generator to run")
	res := flag.Int("res", 257, "heightmap resolution")
	flag.Parse()

	factory, ok := core.Generators()[*gen]
	if !ok {
		log.Fatalf("unknown generator %q", *gen)
	}

	world, err := factory(map[string]string{
		"seed": strconv.FormatInt(cfg.Seed, 10),
		"res":  strconv.Itoa(*res),
	})
	if err != nil {
		log.Fatal(err)
	}
	world.Reset(cfg.Seed)

	game := app.New(world, cfg)
	size := world.Size()

	ebiten.SetWindowTitle("isle-gen — " + world.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
