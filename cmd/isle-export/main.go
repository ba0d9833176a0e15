// Command isle-export runs the full island pipeline headlessly and writes
// every committed buffer as a PNG.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"isle-gen/internal/core"
	"isle-gen/internal/island"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	seed := flag.Int64("seed", 42, "generation seed")
	res := flag.Int("res", 257, "heightmap resolution")
	holeRes := flag.Int("hole-res", 256, "hole mask resolution")
	tex := flag.Int("tex", 256, "texture size")
	blendRes := flag.Int("blend-res", 128, "blend map resolution")
	outDir := flag.String("out", "out", "output directory")
	flag.Parse()

	cfg := island.DefaultConfig()
	cfg.Seed = *seed
	cfg.Resolution = *res
	cfg.HoleResolution = *holeRes
	cfg.TextureWidth = *tex
	cfg.TextureHeight = *tex
	cfg.BlendResolution = *blendRes

	world, err := island.NewWithConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", *outDir).Msg("cannot create output directory")
	}

	world.Reset(*seed)
	phase := world.Phase()
	phaseStart := time.Now()
	steps := 0
	for {
		more := world.Step()
		steps++
		if next := world.Phase(); next != phase {
			log.Info().
				Str("phase", phase).
				Int("steps", steps).
				Dur("took", time.Since(phaseStart)).
				Msg("phase committed")
			phase = next
			phaseStart = time.Now()
			steps = 0
		}
		if !more {
			break
		}
	}

	log.Info().
		Int64("seed", *seed).
		Float64("sea_level", world.SeaLevel()).
		Float64("land_fraction", world.LandFraction()).
		Float64("hole_fraction", world.HoleFraction()).
		Msg("generation finished")

	outputs := []struct {
		name string
		img  image.Image
	}{
		{"heightmap.png", heightImage(world)},
		{"sand.png", textureImage(world.Sand())},
		{"dirt.png", textureImage(world.Dirt())},
		{"grass.png", textureImage(world.Grass())},
		{"rock.png", textureImage(world.Rock())},
		{"blend_sand.png", blendImage(world, island.LayerSand)},
		{"blend_dirt.png", blendImage(world, island.LayerDirt)},
		{"blend_grass.png", blendImage(world, island.LayerGrass)},
		{"blend_rock.png", blendImage(world, island.LayerRock)},
		{"holes.png", holeImage(world)},
	}
	for _, out := range outputs {
		path := filepath.Join(*outDir, out.name)
		if err := writePNG(path, out.img); err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("write failed")
		}
		log.Info().Str("path", path).Msg("wrote")
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func heightImage(w *island.World) image.Image {
	grid := w.Heightmap()
	amplitude := w.Config().Shape.Amplitude
	img := image.NewGray(image.Rect(0, 0, grid.W, grid.H))
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(grid.At(x, y) / amplitude * 255)})
		}
	}
	return img
}

func holeImage(w *island.World) image.Image {
	grid := w.Holes()
	img := image.NewGray(image.Rect(0, 0, grid.W, grid.H))
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			if grid.At(x, y) {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}

func textureImage(grid *core.ColorGrid) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, grid.W, grid.H))
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			img.SetNRGBA(x, y, grid.At(x, y))
		}
	}
	return img
}

func blendImage(w *island.World, layer int) image.Image {
	grid := w.Blend()
	img := image.NewGray(image.Rect(0, 0, grid.W, grid.H))
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			v := grid.At(x, y, layer)
			if v < 0 {
				v = 0
			}
			if v > 1 {
				v = 1
			}
			img.SetGray(x, y, color.Gray{Y: uint8(v * 255)})
		}
	}
	return img
}
