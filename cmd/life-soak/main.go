package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"lifecanvas/internal/core"
	"lifecanvas/internal/life"
	"lifecanvas/internal/render"

	"github.com/wcharczuk/go-chart/v2"
	"golang.org/x/sync/errgroup"
)

type scenarioResult struct {
	seed       int64
	initialPop int
	peakPop    int
	finalPop   int
	births     int
	deaths     int
	settledAt  int
	violations int
	population []float64
	birthsLog  []float64
	deathsLog  []float64
}

func (r scenarioResult) String() string {
	settled := "never"
	if r.settledAt > 0 {
		settled = fmt.Sprintf("gen %d", r.settledAt)
	}
	return fmt.Sprintf("seed=%d pop %d→%d peak=%d births=%d deaths=%d settled=%s",
		r.seed, r.initialPop, r.finalPop, r.peakPop, r.births, r.deaths, settled)
}

func main() {
	boards := flag.Int("boards", 64, "number of seeded boards to run")
	gens := flag.Int("gens", 500, "generations per board")
	width := flag.Int("width", 320, "surface width in pixels")
	height := flag.Int("height", 180, "surface height in pixels")
	scale := flag.Int("scale", 5, "pixel size of one cell")
	alive := flag.Float64("alive", 0.3, "probability that a cell starts alive")
	seed := flag.Int64("seed", 1, "seed of the first board; board i uses seed+i")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	chartPath := flag.String("chart", "", "write a PNG chart of the longest-lived board to this path")
	flag.Parse()

	cfg := life.DefaultConfig()
	cfg.Scale = *scale
	cfg.AliveChance = *alive
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	fmt.Printf("Running %d boards (%d workers, %d generations, %dx%d px at scale %d)\n",
		*boards, *workers, *gens, *width, *height, *scale)

	var (
		mu  sync.Mutex
		all []scenarioResult
		eg  errgroup.Group
	)
	eg.SetLimit(max(*workers, 1))

	start := time.Now()
	for i := 0; i < *boards; i++ {
		boardCfg := cfg
		boardCfg.Seed = *seed + int64(i)
		eg.Go(func() error {
			res, err := runScenario(boardCfg, *width, *height, *gens)
			if err != nil {
				return fmt.Errorf("seed %d: %w", boardCfg.Seed, err)
			}
			mu.Lock()
			all = append(all, res)
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	sort.Slice(all, func(i, j int) bool { return lifespan(all[i], *gens) > lifespan(all[j], *gens) })

	violations := 0
	for _, res := range all {
		violations += res.violations
	}

	fmt.Printf("\nTop 5 longest-lived boards (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 5; i++ {
		fmt.Printf("%2d) %s\n", i+1, all[i])
	}
	fmt.Printf("\nPopulation identity violations: %d\n", violations)

	if *chartPath != "" && len(all) > 0 {
		if err := writeChart(*chartPath, all[0]); err != nil {
			log.Fatalf("chart: %v", err)
		}
		fmt.Printf("Wrote %s\n", *chartPath)
	}
	if violations > 0 {
		os.Exit(1)
	}
}

func runScenario(cfg life.Config, width, height, gens int) (scenarioResult, error) {
	surface := render.NewSurface(width, height)
	frames := core.NewFrameQueue()
	board, err := life.NewBoard(surface, frames, cfg, life.WithOverlay(nil))
	if err != nil {
		return scenarioResult{}, err
	}
	defer board.Destroy()
	if err := board.Init(); err != nil {
		return scenarioResult{}, err
	}

	res := scenarioResult{seed: cfg.Seed, initialPop: board.Population()}
	res.peakPop = res.initialPop
	prev := res.initialPop

	if err := board.Start(); err != nil {
		return scenarioResult{}, err
	}
	for gen := 1; gen <= gens; gen++ {
		if gen > 1 {
			frames.RunFrame()
		}
		m := board.Metrics()
		if m.Births+(prev-m.Deaths) != m.Population {
			res.violations++
		}
		if m.Births == 0 && m.Deaths == 0 && res.settledAt == 0 {
			res.settledAt = m.Generation
		}
		res.births += m.Births
		res.deaths += m.Deaths
		res.peakPop = max(res.peakPop, m.Population)
		res.population = append(res.population, float64(m.Population))
		res.birthsLog = append(res.birthsLog, float64(m.Births))
		res.deathsLog = append(res.deathsLog, float64(m.Deaths))
		prev = m.Population
	}
	res.finalPop = prev
	return res, nil
}

func lifespan(r scenarioResult, gens int) int {
	if r.settledAt == 0 {
		return gens + 1
	}
	return r.settledAt
}

func writeChart(path string, res scenarioResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := renderChart(f, res); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func renderChart(w io.Writer, res scenarioResult) error {
	xs := make([]float64, len(res.population))
	for i := range xs {
		xs[i] = float64(i + 1)
	}
	graph := chart.Chart{
		Title:  fmt.Sprintf("seed %d", res.seed),
		Width:  1200,
		Height: 500,
		XAxis:  chart.XAxis{Name: "Generation"},
		YAxis:  chart.YAxis{Name: "Cells"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Population",
				XValues: xs,
				YValues: res.population,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2},
			},
			chart.ContinuousSeries{
				Name:    "Births",
				XValues: xs,
				YValues: res.birthsLog,
				Style:   chart.Style{StrokeColor: chart.ColorGreen, StrokeWidth: 1},
			},
			chart.ContinuousSeries{
				Name:    "Deaths",
				XValues: xs,
				YValues: res.deathsLog,
				Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 1},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph.Render(chart.PNG, w)
}
