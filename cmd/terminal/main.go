// Command terminal plays the maze in a text terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/game/maze"
	"github.com/beka-birhanu/vinom-maze/logger"
	"github.com/gdamore/tcell/v2"
)

const (
	noticeReset    = "You hit a wall! Back to level 1."
	noticeComplete = "All levels complete! Press r to play again."
)

func main() {
	size := flag.Int("size", config.Envs.MazeSize, "cells per maze side (odd, >= 5)")
	levels := flag.Int("levels", config.Envs.MaxLevel, "levels per run")
	seed := flag.Int64("seed", 0, "maze seed, 0 picks one from the clock")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	appLogger, err := logger.New("TERMINAL", config.ColorCyan, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(*size, *levels, *seed, *mute, appLogger); err != nil {
		appLogger.Error(err.Error())
		os.Exit(1)
	}
}

func run(size, levels int, seed int64, mute bool, log logger.Logger) error {
	sound, err := newChime(mute)
	if err != nil {
		log.Warning(fmt.Sprintf("audio disabled: %s", err))
	}
	defer sound.close()

	notice := ""
	controller, err := game.NewLevelController(game.Config{
		Size:        size,
		MaxLevel:    levels,
		MazeFactory: maze.Factory(maze.NewSource(seed)),
		Hooks: game.Hooks{
			OnReset: func(game.ResetReason) {
				notice = noticeReset
				sound.play(toneReset, 150*time.Millisecond)
			},
			OnLevelAdvance: func(level int) {
				notice = fmt.Sprintf("Level %d", level)
				sound.play(toneAdvance, 80*time.Millisecond)
			},
			OnAllLevelsComplete: func() {
				notice = noticeComplete
				sound.play(toneComplete, 300*time.Millisecond)
			},
		},
	})
	if err != nil {
		return err
	}
	if err := controller.Start(); err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	redraw := func() {
		screen.Clear()
		draw(screen, controller.Snapshot(), notice)
		screen.Show()
	}
	redraw()

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			redraw()
		case *tcell.EventKey:
			act, d := keyAction(ev.Key(), ev.Rune())
			switch act {
			case actQuit:
				return nil
			case actRestart:
				notice = ""
				if err := controller.Start(); err != nil {
					return err
				}
			case actMove:
				outcome, err := controller.AttemptMove(d)
				if err != nil {
					return err
				}
				if outcome == game.Moved {
					notice = ""
				}
			default:
				continue
			}
			redraw()
		case nil:
			return nil
		}
	}
}
