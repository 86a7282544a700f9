package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"

	"github.com/ericmarkmartin/wordle-solver/solver"
	"github.com/ericmarkmartin/wordle-solver/wordle"
)

type globalConfiguration struct {
	wordList   *wordle.WordList
	openers    []wordle.Word
	maxGuesses int
	progress   bool
	log        zerolog.Logger
}

func loadTokens(wordFile string, count int) ([]string, error) {
	tokens := wordle.SortedDictionary()
	if wordFile != "" {
		data, err := os.ReadFile(wordFile)
		if err != nil {
			return nil, err
		}
		tokens = strings.Fields(string(data))
	}
	if count > 0 && count < len(tokens) {
		tokens = tokens[0:count]
	}
	return tokens, nil
}

func globalConfig(wordFile string, count int, openerStrings []string, maxGuesses int, progress, debug bool) (globalConfiguration, error) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	tokens, err := loadTokens(wordFile, count)
	if err != nil {
		return globalConfiguration{}, err
	}
	wordList, err := wordle.NewWordList(tokens)
	if err != nil {
		return globalConfiguration{}, err
	}
	if len(openerStrings) == 0 {
		openerStrings = []string{solver.DefaultOpener}
	}
	openers := make([]wordle.Word, 0, len(openerStrings))
	for _, opener := range openerStrings {
		word, err := wordle.NewWord(opener, wordList.WordLength())
		if err != nil {
			return globalConfiguration{}, err
		}
		openers = append(openers, word)
	}
	return globalConfiguration{
		wordList:   wordList,
		openers:    openers,
		maxGuesses: maxGuesses,
		progress:   progress,
		log:        log,
	}, nil
}

// play runs the interactive mode: the human guesses, a human oracle scores,
// and the solver can take over when asked.
func play(config globalConfiguration) error {
	strategy := solver.NewHumanThenSolver(config.wordList, os.Stdin, os.Stdout, config.maxGuesses, config.log)
	oracle := solver.NewConsoleOracle(os.Stdin, os.Stdout, config.wordList.WordLength())
	won, err := wordle.Run(oracle, strategy)
	if err != nil {
		return err
	}
	if won {
		fmt.Println("won!")
	} else {
		fmt.Println("lost")
	}
	return nil
}

// recordingStrategy remembers the guesses an inner strategy made.
type recordingStrategy struct {
	inner   wordle.Strategy
	guesses []wordle.Word
}

func (r *recordingStrategy) MakeGuess() wordle.Word {
	guess := r.inner.MakeGuess()
	r.guesses = append(r.guesses, guess)
	return guess
}

func (r *recordingStrategy) ReceiveScore(score wordle.Score) {
	r.inner.ReceiveScore(score)
}

func solveOne(config globalConfiguration, secret wordle.Word) ([]wordle.Word, bool, error) {
	engine := wordle.NewStandardEngine(secret, config.wordList, config.maxGuesses)
	strategy := &recordingStrategy{
		inner: solver.New(config.wordList, config.openers, config.maxGuesses, config.log),
	}
	won, err := wordle.Run(engine, strategy)
	return strategy.guesses, won, err
}

func solve(config globalConfiguration, secretString string) error {
	secret, err := wordle.NewWord(secretString, config.wordList.WordLength())
	if err != nil {
		return err
	}
	if !config.wordList.Contains(secret) {
		return fmt.Errorf("secret %q: %w", secretString, wordle.ErrNotInWordList)
	}
	guesses, won, err := solveOne(config, secret)
	if err != nil {
		return err
	}
	fmt.Print(secret.String(), ":")
	for _, guess := range guesses {
		fmt.Print(" ", guess.String())
	}
	fmt.Println()
	if !won {
		return cli.Exit("did not solve within the guess budget", 1)
	}
	return nil
}

// sim plays the solver against every solution and reports how many games
// took how many guesses.
func sim(config globalConfiguration, solutionStrings []string) error {
	solutions := config.wordList.Words()
	if len(solutionStrings) > 0 {
		solutions = solutions[:0]
		for _, solutionString := range solutionStrings {
			solution, err := wordle.NewWord(solutionString, config.wordList.WordLength())
			if err != nil {
				return err
			}
			if !config.wordList.Contains(solution) {
				return fmt.Errorf("solution %q: %w", solutionString, wordle.ErrNotInWordList)
			}
			solutions = append(solutions, solution)
		}
	}

	type game struct {
		solution wordle.Word
		guesses  []wordle.Word
	}
	var bar *progressbar.ProgressBar
	if config.progress {
		bar = progressbar.Default(int64(len(solutions)))
	} else {
		bar = progressbar.DefaultSilent(int64(len(solutions)))
	}
	sortedGames := make(map[int][]game)
	lostGames := []game{}
	for _, solution := range solutions {
		guesses, won, err := solveOne(config, solution)
		if err != nil {
			return err
		}
		bar.Add(1)
		if !won {
			lostGames = append(lostGames, game{solution, guesses})
			continue
		}
		sortedGames[len(guesses)] = append(sortedGames[len(guesses)], game{solution, guesses})
	}

	keys := make([]int, 0, len(sortedGames))
	for k := range sortedGames {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, numGuesses := range keys {
		games := sortedGames[numGuesses]
		fmt.Println(numGuesses, len(games), "---------------------")
		for _, g := range games {
			fmt.Print(g.solution.String(), ":")
			for _, guess := range g.guesses {
				fmt.Print(" ", guess.String())
			}
			fmt.Println()
		}
	}
	if len(lostGames) > 0 {
		fmt.Println("lost", len(lostGames), "---------------------")
		for _, g := range lostGames {
			fmt.Println(g.solution.String())
		}
		return cli.Exit("some games were not solved", 1)
	}
	return nil
}

// first ranks every word by its guaranteed elimination count against the
// whole dictionary, best first.
func first(config globalConfiguration) error {
	s := solver.New(config.wordList, nil, config.maxGuesses, config.log)
	type wordScore struct {
		word  wordle.Word
		score int
	}
	scores := make([]wordScore, 0, config.wordList.Len())
	for _, word := range config.wordList.Range {
		scores = append(scores, wordScore{word, s.EliminationScore(word)})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})
	for _, ws := range scores {
		fmt.Println(ws.word.String(), ws.score)
	}
	return nil
}

func main() {
	count := 0
	maxGuesses := 10
	progress := false
	debug := false
	wordFile := ""
	cmd := &cli.Command{
		Name:  "wds",
		Usage: "wordle solver",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "count",
				Value:       0,
				Aliases:     []string{"c"},
				Usage:       "number of words, 0 is all words",
				Destination: &count,
			},
			&cli.StringFlag{
				Name:        "words",
				Value:       "",
				Aliases:     []string{"w"},
				Usage:       "word list file, one word per line, default is the bundled list",
				Destination: &wordFile,
			},
			&cli.IntFlag{
				Name:        "guesses",
				Value:       10,
				Aliases:     []string{"g"},
				Usage:       "number of guesses allowed per game",
				Destination: &maxGuesses,
			},
			&cli.BoolFlag{
				Name:        "progress",
				Value:       false,
				Aliases:     []string{"p"},
				Usage:       "show progress bar",
				Destination: &progress,
			},
			&cli.BoolFlag{
				Name:        "debug",
				Value:       false,
				Usage:       "log solver internals",
				Destination: &debug,
			},
		},
		Commands: []*cli.Command{
			{
				Name: "play",
				Usage: `play a game interactively: you guess, you enter the scores,
				and the solver takes over whenever you say so`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					config, err := globalConfig(wordFile, count, nil, maxGuesses, progress, debug)
					if err != nil {
						return err
					}
					return play(config)
				},
			},
			{
				Name:  "solve",
				Usage: "solve SECRET: run the solver against a known secret word",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:    "first",
						Aliases: []string{"f"},
						Usage:   "--first word1 --first word2, fixed opening guesses",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg() != 1 {
						return cli.Exit("must supply exactly one secret word", 2)
					}
					config, err := globalConfig(wordFile, count, cmd.StringSlice("first"), maxGuesses, progress, debug)
					if err != nil {
						return err
					}
					return solve(config, cmd.Args().First())
				},
			},
			{
				Name: "sim",
				Usage: `sim [solution]...
				Simulate games against the given solutions, or against every
				dictionary word when none are given, and report the guess counts.`,
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:    "first",
						Aliases: []string{"f"},
						Usage:   "--first word1 --first word2, fixed opening guesses",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					config, err := globalConfig(wordFile, count, cmd.StringSlice("first"), maxGuesses, progress, debug)
					if err != nil {
						return err
					}
					return sim(config, cmd.Args().Slice())
				},
			},
			{
				Name:  "first",
				Usage: "rank opening words by guaranteed elimination count",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					config, err := globalConfig(wordFile, count, nil, maxGuesses, progress, debug)
					if err != nil {
						return err
					}
					return first(config)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
