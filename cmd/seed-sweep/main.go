// Command seed-sweep generates many islands across a seed range and reports
// shape statistics, to spot degenerate parameter choices quickly.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"isle-gen/internal/island"
	"isle-gen/pkg/core"
)

type seedResult struct {
	seed         int64
	landFraction float64
	holeFraction float64
	maxHeight    float64
}

func main() {
	count := flag.Int("count", 64, "number of seeds to sweep")
	base := flag.Int64("base", 1, "first seed of the range (ignored with -random)")
	random := flag.Bool("random", false, "sample random seeds instead of a range")
	res := flag.Int("res", 65, "heightmap resolution")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	seeds := make([]int64, *count)
	if *random {
		rng := core.NewRNG(time.Now().UnixNano())
		for i := range seeds {
			seeds[i] = rng.Seed()
		}
	} else {
		for i := range seeds {
			seeds[i] = *base + int64(i)
		}
	}

	jobs := make(chan int64)
	results := make(chan seedResult, len(seeds))
	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cfg := island.DefaultConfig()
			cfg.Resolution = *res
			cfg.HoleResolution = *res
			cfg.BlendResolution = *res
			world, err := island.NewWithConfig(cfg)
			if err != nil {
				panic(err)
			}
			for seed := range jobs {
				world.Reset(seed)
				world.Generate()
				maxHeight := 0.0
				for _, h := range world.Heightmap().Cells() {
					if h > maxHeight {
						maxHeight = h
					}
				}
				results <- seedResult{
					seed:         seed,
					landFraction: world.LandFraction(),
					holeFraction: world.HoleFraction(),
					maxHeight:    maxHeight,
				}
			}
		}()
	}

	start := time.Now()
	go func() {
		for _, seed := range seeds {
			jobs <- seed
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	all := make([]seedResult, 0, len(seeds))
	for r := range results {
		all = append(all, r)
	}
	if len(all) == 0 {
		fmt.Println("no seeds swept")
		return
	}
	sort.Slice(all, func(i, j int) bool { return all[i].landFraction < all[j].landFraction })

	var sumLand, sumHole float64
	for _, r := range all {
		sumLand += r.landFraction
		sumHole += r.holeFraction
	}
	n := float64(len(all))

	fmt.Printf("swept %d seeds at res %d in %v\n", len(all), *res, time.Since(start).Round(time.Millisecond))
	fmt.Printf("land fraction: mean %.3f min %.3f (seed %d) max %.3f (seed %d)\n",
		sumLand/n,
		all[0].landFraction, all[0].seed,
		all[len(all)-1].landFraction, all[len(all)-1].seed)
	fmt.Printf("hole fraction: mean %.3f\n", sumHole/n)
	fmt.Println("lowest-land seeds:")
	for i := 0; i < len(all) && i < 5; i++ {
		r := all[i]
		fmt.Printf("  seed %-20d land %.3f holes %.3f maxHeight %.3f\n",
			r.seed, r.landFraction, r.holeFraction, r.maxHeight)
	}
}
