// Command snake-sweep plays many headless games with the greedy autopilot
// and reports how far each seed gets.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"sync"
	"time"

	"tile-snake/internal/app"
	"tile-snake/internal/core"
	_ "tile-snake/internal/sims/snake"
)

type pilot interface {
	Suggest() core.Direction
}

type scenario struct {
	model  string
	seed   int64
	length int
}

func (s scenario) String() string {
	return fmt.Sprintf("model=%s seed=%d length=%d", s.model, s.seed, s.length)
}

type scenarioResult struct {
	scenario scenario
	score    int
	steps    int
	finished bool
	reason   string
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	seeds := flag.Int("seeds", 32, "number of consecutive seeds to play, starting at -seed")
	steps := flag.Int("steps", 20000, "step limit per game")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "number of best results to print")
	flag.Parse()

	base, err := cfg.ModelOptions()
	if err != nil {
		log.Fatal(err)
	}

	models := []string{cfg.Model}
	if cfg.Model == "all" {
		models = core.GameNames()
	}
	var sets []scenario
	for _, name := range models {
		if _, ok := core.Games()[name]; !ok {
			log.Fatalf("unknown model %q (have %v)", name, core.GameNames())
		}
		for _, length := range []int{2, 4, 8} {
			for i := 0; i < *seeds; i++ {
				sets = append(sets, scenario{model: name, seed: cfg.Seed + int64(i), length: length})
			}
		}
	}

	fmt.Printf("Sweeping %d scenarios on %dx%d (%d workers, %d steps)\n", len(sets), cfg.Width, cfg.Height, *workers, *steps)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < max(*workers, 1); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range jobs {
				results <- runScenario(base, s, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, s := range sets {
			jobs <- s
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	unfinished := 0
	for res := range results {
		all = append(all, res)
		if !res.finished {
			unfinished++
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].score != all[j].score {
			return all[i].score > all[j].score
		}
		return all[i].steps < all[j].steps
	})
	elapsed := time.Since(start)

	fmt.Printf("\nTop %d results (elapsed %s, %d hit the step limit):\n", *top, elapsed.Round(time.Millisecond), unfinished)
	for i := 0; i < len(all) && i < *top; i++ {
		res := all[i]
		fmt.Printf("%2d) score=%d steps=%d %s: %s\n", i+1, res.score, res.steps, res.scenario, res.reason)
	}
}

func runScenario(base map[string]string, s scenario, limit int) scenarioResult {
	opts := make(map[string]string, len(base)+2)
	for k, v := range base {
		opts[k] = v
	}
	opts["seed"] = strconv.FormatInt(s.seed, 10)
	opts["length"] = strconv.Itoa(s.length)

	model := core.Games()[s.model](opts)
	defer model.TearDown()
	for range model.Initialize() {
	}

	auto, _ := model.(pilot)
	res := scenarioResult{scenario: s, reason: "step limit"}
	for res.steps < limit {
		var cmd core.Direction
		ok := auto != nil
		if ok {
			cmd = auto.Suggest()
		}
		u, err := model.Step(cmd, ok)
		if err != nil {
			res.finished = true
			res.reason = err.Error()
			break
		}
		res.steps++
		res.score = u.Score
	}
	return res
}
