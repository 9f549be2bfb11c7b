package main

import (
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/gdamore/tcell/v2"
)

const helpLine = "arrows/wasd move  r restart  q quit"

var (
	styleWall   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleGoal   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleLabel  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleNotice = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleHelp   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

type action int

const (
	actNone action = iota
	actMove
	actRestart
	actQuit
)

// keyAction maps one key press to what the loop should do.
func keyAction(key tcell.Key, r rune) (action, game.Direction) {
	switch key {
	case tcell.KeyUp:
		return actMove, game.Up
	case tcell.KeyDown:
		return actMove, game.Down
	case tcell.KeyLeft:
		return actMove, game.Left
	case tcell.KeyRight:
		return actMove, game.Right
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actQuit, 0
	case tcell.KeyRune:
	default:
		return actNone, 0
	}

	switch r {
	case 'q', 'Q':
		return actQuit, 0
	case 'r', 'R':
		return actRestart, 0
	}
	if d, ok := game.ParseDirection(string(r)); ok {
		return actMove, d
	}
	return actNone, 0
}

// canvas is the part of tcell.Screen the renderer writes to.
type canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// draw renders the label on row 0, the maze below it, then the notice and help lines.
func draw(c canvas, snap game.Snapshot, notice string) {
	drawText(c, 0, 0, snap.Label, styleLabel)

	top := 1
	for row, cells := range snap.Walls {
		for col, wall := range cells {
			ch, style := ' ', tcell.StyleDefault
			if wall {
				ch, style = '█', styleWall
			}
			c.SetContent(col, top+row, ch, nil, style)
		}
	}
	c.SetContent(snap.Goal.Col, top+snap.Goal.Row, 'G', nil, styleGoal)
	c.SetContent(snap.Player.Col, top+snap.Player.Row, '@', nil, stylePlayer)

	drawText(c, 0, top+snap.Size+1, notice, styleNotice)
	drawText(c, 0, top+snap.Size+2, helpLine, styleHelp)
}

func drawText(c canvas, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		c.SetContent(x, y, r, nil, style)
		x++
	}
}
