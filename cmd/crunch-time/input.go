package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/crunch-time/puzzle"
)

// action is what a key press asks the game to do
type action int

const (
	actNone action = iota
	actQuit
	actPause
	actInteract
	actMove
	actPuzzle
	actVolumeUp
	actVolumeDown
)

// command is a translated key press
type command struct {
	act    action
	dx, dy int
	in     puzzle.Input
}

// translateKey maps a key to a command
// While a puzzle is open every printable key belongs to the puzzle; only Ctrl-C and Ctrl-Q quit
func translateKey(ev *tcell.EventKey, puzzleOpen bool) command {
	if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyCtrlQ {
		return command{act: actQuit}
	}

	if puzzleOpen {
		switch ev.Key() {
		case tcell.KeyEscape:
			return command{act: actPuzzle, in: puzzle.Input{Key: puzzle.KeyEscape}}
		case tcell.KeyEnter:
			return command{act: actPuzzle, in: puzzle.Input{Key: puzzle.KeyEnter}}
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			return command{act: actPuzzle, in: puzzle.Input{Key: puzzle.KeyBackspace}}
		case tcell.KeyRune:
			return command{act: actPuzzle, in: puzzle.Input{Key: puzzle.KeyRune, Rune: ev.Rune()}}
		}
		return command{}
	}

	switch ev.Key() {
	case tcell.KeyUp:
		return command{act: actMove, dy: -1}
	case tcell.KeyDown:
		return command{act: actMove, dy: 1}
	case tcell.KeyLeft:
		return command{act: actMove, dx: -1}
	case tcell.KeyRight:
		return command{act: actMove, dx: 1}
	case tcell.KeyEnter:
		return command{act: actInteract}
	case tcell.KeyRune:
	default:
		return command{}
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return command{act: actQuit}
	case 'p', 'P':
		return command{act: actPause}
	case '+', '=':
		return command{act: actVolumeUp}
	case '-', '_':
		return command{act: actVolumeDown}
	case 'e', 'E', ' ':
		return command{act: actInteract}
	case 'w', 'k':
		return command{act: actMove, dy: -1}
	case 's', 'j':
		return command{act: actMove, dy: 1}
	case 'a', 'h':
		return command{act: actMove, dx: -1}
	case 'd', 'l':
		return command{act: actMove, dx: 1}
	}
	return command{}
}
