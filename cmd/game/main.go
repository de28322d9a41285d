package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/quantumgrid/quantumgrid/internal/game"
	"github.com/quantumgrid/quantumgrid/internal/game/bot"
)

func main() {
	size := flag.Int("size", 8, "grid size (5-8)")
	turns := flag.Int("turns", 24, "placement turn budget")
	blueName := flag.String("blue", "hard", "blue bot difficulty (easy, medium, hard, expert)")
	redName := flag.String("red", "expert", "red bot difficulty (easy, medium, hard, expert)")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	fmt.Printf("Game seed: %d\n", *seed)
	rng := rand.New(rand.NewSource(*seed))

	blueDiff, err := bot.ParseDifficulty(*blueName)
	if err != nil {
		log.Fatal().Err(err).Msg("Bad blue difficulty")
	}
	redDiff, err := bot.ParseDifficulty(*redName)
	if err != nil {
		log.Fatal().Err(err).Msg("Bad red difficulty")
	}

	// Self-play: a two-human session driven by two selectors.
	engine, err := game.NewEngine(game.Config{GridSize: *size, TurnBudget: *turns}, rng, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create engine")
	}

	selectors := map[string]bot.Selector{
		"blue": bot.New(blueDiff, rng),
		"red":  bot.New(redDiff, rng),
	}
	histories := map[string][]bot.Move{}

	fmt.Printf("Initial board:\n%s\n", engine.Render())

	turn := 0
	for engine.Phase() == game.PhasePlacement {
		player := engine.CurrentPlayer()
		sel := selectors[player.String()]

		move, ok := sel.ChooseMove(engine.Board(), player, histories[player.String()])
		if !ok {
			fmt.Printf("%s has no legal move, observing early\n", player)
			engine.StartObservationPhase()
			break
		}
		histories[player.String()] = bot.AppendHistory(histories[player.String()], move)
		engine.ApplyMove(move.Row, move.Col)

		turn++
		if turn%4 == 0 {
			fmt.Printf("After turn %d:\n%s\n", turn, engine.Render())
		}
	}

	fmt.Printf("Final board:\n%s\n", engine.Render())

	blue, red := engine.Scores()
	switch {
	case blue == red:
		fmt.Printf("Game over: tied at %d\n", blue)
	case blue > red:
		fmt.Printf("Game over: Blue (%s) wins %d to %d\n", blueDiff, blue, red)
	default:
		fmt.Printf("Game over: Red (%s) wins %d to %d\n", redDiff, red, blue)
	}
}
