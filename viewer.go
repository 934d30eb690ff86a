package main

import (
	"fmt"

	"github.com/faiface/mainthread"
	"github.com/gdamore/tcell/v2"
	"github.com/memmaker/tileworld/game"
	"github.com/pkg/errors"
)

// viewer shows one z level of the battle and advances it one tick per key press.
type viewer struct {
	screen tcell.Screen
	battle *game.Battle
	level  int32
}

func glyphStyle(glyph rune) tcell.Style {
	switch glyph {
	case '@':
		return tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	case '&':
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case '*', 'x':
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case '~':
		return tcell.StyleDefault.Foreground(tcell.ColorPurple)
	case '#', 'H':
		return tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	}
	return tcell.StyleDefault
}

func runViewer(battle *game.Battle) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "opening terminal")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "initialising terminal")
	}
	defer screen.Fini()

	v := &viewer{screen: screen, battle: battle}
	for {
		v.draw()
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
			switch ev.Rune() {
			case ' ':
				if err := mainthread.CallErr(battle.Tick); err != nil {
					return err
				}
			case '+':
				if v.level < battle.Map.Size.Z-1 {
					v.level++
				}
			case '-':
				if v.level > 0 {
					v.level--
				}
			}
		}
	}
}

func (v *viewer) draw() {
	v.screen.Clear()
	width, _ := v.screen.Size()
	for y, row := range renderLevel(v.battle.Map, v.level, width) {
		for x, glyph := range []rune(row) {
			v.screen.SetContent(x, y, glyph, nil, glyphStyle(glyph))
		}
	}
	status := fmt.Sprintf("tick %d  level %d  [space] tick  [+/-] level  [q] quit", v.battle.Ticks(), v.level)
	for x, r := range []rune(status) {
		v.screen.SetContent(x, int(v.battle.Map.Size.Y)+1, r, nil, tcell.StyleDefault)
	}
	v.screen.Show()
}
