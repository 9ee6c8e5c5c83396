package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/luca-patrignani/wildcard-poker/domain/deck"
	"github.com/luca-patrignani/wildcard-poker/domain/poker"
	"github.com/luca-patrignani/wildcard-poker/ledger"
)

// session ties a deck to the history of the hands drawn from it.
type session struct {
	deck    *deck.Deck
	history *ledger.History
	logger  *slog.Logger
}

// drawResult is everything the front end shows after a draw or an evaluation.
type drawResult struct {
	Hand           []poker.Card
	Classification poker.Classification
	Detail         string // literal description, empty when not available
	Reshuffled     bool
	Remaining      int
}

func newSession(d *deck.Deck, logger *slog.Logger) *session {
	return &session{
		deck:    d,
		history: ledger.NewHistory(),
		logger:  logger,
	}
}

// draw takes n cards from the deck, classifies them and records the draw.
func (s *session) draw(n int) (drawResult, error) {
	before := s.deck.Reshuffles()
	hand, err := s.deck.Draw(n)
	if err != nil {
		return drawResult{}, err
	}
	res := s.classify(hand)
	res.Reshuffled = s.deck.Reshuffles() > before
	res.Remaining = s.deck.Remaining()

	if _, err := s.history.Append(hand, res.Classification, ledger.Metadata{
		Remaining:  res.Remaining,
		Reshuffled: res.Reshuffled,
	}); err != nil {
		return drawResult{}, fmt.Errorf("recording draw: %w", err)
	}
	s.logger.Debug("hand drawn", "cards", n, "classification", res.Classification.Label)
	return res, nil
}

// classify evaluates a hand without touching the deck or the history.
func (s *session) classify(hand []poker.Card) drawResult {
	res := drawResult{
		Hand:           hand,
		Classification: poker.Evaluate(hand),
		Remaining:      s.deck.Remaining(),
	}
	detail, err := poker.Describe(hand)
	switch {
	case err == nil:
		res.Detail = detail
	case errors.Is(err, poker.ErrNotDescribable):
	default:
		s.logger.Debug("literal description failed", "error", err)
	}
	return res
}

type commandKind int

const (
	cmdDraw commandKind = iota
	cmdEval
	cmdHistory
	cmdShuffle
	cmdHelp
	cmdQuit
)

type command struct {
	kind  commandKind
	count int
	hand  []poker.Card
}

// parseCommand reads one line typed at the prompt.
func parseCommand(line string) (command, error) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return command{}, errors.New("empty command")
	}
	switch strings.ToLower(fields[0]) {
	case "eval", "e":
		if len(fields) < 2 {
			return command{}, errors.New("eval needs at least one card, e.g. eval 10S JS QS KS AS")
		}
		hand, err := poker.ParseHand(strings.Join(fields[1:], " "))
		if err != nil {
			return command{}, err
		}
		return command{kind: cmdEval, hand: hand}, nil
	case "history", "h":
		return command{kind: cmdHistory}, nil
	case "shuffle", "s":
		return command{kind: cmdShuffle}, nil
	case "help", "?":
		return command{kind: cmdHelp}, nil
	case "quit", "q", "exit":
		return command{kind: cmdQuit}, nil
	}
	n, err := parseCount(fields[0])
	if err != nil {
		return command{}, err
	}
	return command{kind: cmdDraw, count: n}, nil
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unknown command %q", s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("number of cards must be positive, got %d", n)
	}
	return n, nil
}

type config struct {
	count  int // draw once and exit when > 0
	jokers bool
}

// parseArgs reads the optional "<cards> [jokers]" arguments.
func parseArgs(args []string) (config, error) {
	var cfg config
	if len(args) > 2 {
		return cfg, errors.New("too many arguments")
	}
	if len(args) == 0 {
		return cfg, nil
	}
	n, err := parseCount(args[0])
	if err != nil {
		return cfg, err
	}
	cfg.count = n
	if len(args) == 2 {
		if strings.ToLower(args[1]) != "jokers" {
			return cfg, fmt.Errorf("unknown option %q", args[1])
		}
		cfg.jokers = true
	}
	return cfg, nil
}
