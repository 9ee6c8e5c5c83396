package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/wildcard-poker/domain/deck"
)

func main() {
	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\nusage: %s [<cards> [jokers]]\n", err, os.Args[0])
		os.Exit(1)
	}

	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	if cfg.count > 0 {
		if err := oneShot(cfg, logger); err != nil {
			logger.Error(err.Error())
			os.Exit(1)
		}
		return
	}

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("W", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ild ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("P", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("oker", pterm.FgDarkGray.ToStyle()),
	).Render()

	jokers, _ := pterm.DefaultInteractiveConfirm.WithDefaultText("Include the two Jokers?").WithDefaultValue(false).Show()
	d, err := deck.New(deck.WithJokers(jokers), deck.WithLogger(logger))
	if err != nil {
		logger.Error("failed to build the deck", "error", err.Error())
		os.Exit(1)
	}
	d.Shuffle()
	pterm.Info.Printfln("Shuffled a %d card deck", d.Size())
	printHelp()

	s := newSession(d, logger)
	for {
		line, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("How many cards?").Show()
		pterm.Println()
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		switch cmd.kind {
		case cmdDraw:
			res, err := s.draw(cmd.count)
			if err != nil {
				pterm.Error.Println(err.Error())
				continue
			}
			printResult(fmt.Sprintf("|DRAW %d|", s.history.Len()), res)
		case cmdEval:
			printResult("|EVALUATION|", s.classify(cmd.hand))
		case cmdShuffle:
			d.Shuffle()
			pterm.Success.Printfln("Shuffled, %d cards to draw", d.Remaining())
		case cmdHistory:
			printHistory(s.history)
		case cmdHelp:
			printHelp()
		case cmdQuit:
			logger.Info("Bye", "draws", s.history.Len())
			return
		}
	}
}

func oneShot(cfg config, logger *slog.Logger) error {
	d, err := deck.New(deck.WithJokers(cfg.jokers), deck.WithLogger(logger))
	if err != nil {
		return err
	}
	d.Shuffle()
	res, err := newSession(d, logger).draw(cfg.count)
	if err != nil {
		return err
	}
	printResult("|DRAW|", res)
	return nil
}
