// Package terminal is a tcell frontend for the game.
package terminal

import (
	"fmt"

	"classic-snake/game/types"
	"classic-snake/session"

	"github.com/gdamore/tcell/v2"
)

// Each arena cell is two columns wide so the board looks square.
const cellWidth = 2

var (
	headRune  = '@'
	bodyRune  = 'o'
	dotRune   = '·'
	foodRunes = []rune{'*', '%', '$', '&'}

	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleDot    = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleHead   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleBody   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleFood   = []tcell.Style{
		tcell.StyleDefault.Foreground(tcell.ColorRed),
		tcell.StyleDefault.Foreground(tcell.ColorFuchsia),
		tcell.StyleDefault.Foreground(tcell.ColorOrange),
		tcell.StyleDefault.Foreground(tcell.ColorAqua),
	}
)

// Renderer draws a session onto a tcell screen. The arena sits inside a
// one-cell border with the status line underneath.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// CellOrigin returns the screen column and row of arena cell p.
func CellOrigin(p types.Point) (x, y int) {
	return 1 + p.X*cellWidth, 1 + p.Y
}

// FoodRune returns the glyph for a food variant.
func FoodRune(variant int) rune {
	return foodRunes[variant%len(foodRunes)]
}

func (r *Renderer) Draw(s *session.Session) {
	g := s.Game()
	r.screen.Clear()

	r.drawBorder(g.Grid)
	for x := 0; x < g.Grid.Width; x++ {
		for y := 0; y < g.Grid.Height; y++ {
			sx, sy := CellOrigin(types.Point{X: x, Y: y})
			r.screen.SetContent(sx, sy, dotRune, nil, styleDot)
		}
	}

	if g.HasFood() {
		v := g.FoodVariant()
		r.put(g.Grid, g.Food(), FoodRune(v), styleFood[v%len(styleFood)])
	}
	for i, segment := range g.Body() {
		if i == 0 {
			continue
		}
		r.put(g.Grid, segment, bodyRune, styleBody)
	}
	r.put(g.Grid, g.Head(), headRune, styleHead)

	status := fmt.Sprintf("Score: %d  Best: %d  Games: %d", g.Score(), s.Best(), s.GamesPlayed())
	if !g.Alive() {
		status = "Game over - press any key"
	}
	r.text(0, g.Grid.Height+2, status, styleText)

	r.screen.Show()
}

// put draws rune c over cell p, clipped to the arena.
func (r *Renderer) put(grid types.Grid, p types.Point, c rune, style tcell.Style) {
	if !grid.Contains(p) {
		return
	}
	sx, sy := CellOrigin(p)
	r.screen.SetContent(sx, sy, c, nil, style)
	r.screen.SetContent(sx+1, sy, c, nil, style)
}

func (r *Renderer) drawBorder(grid types.Grid) {
	right := grid.Width*cellWidth + 1
	bottom := grid.Height + 1
	for x := 1; x < right; x++ {
		r.screen.SetContent(x, 0, '─', nil, styleBorder)
		r.screen.SetContent(x, bottom, '─', nil, styleBorder)
	}
	for y := 1; y < bottom; y++ {
		r.screen.SetContent(0, y, '│', nil, styleBorder)
		r.screen.SetContent(right, y, '│', nil, styleBorder)
	}
	r.screen.SetContent(0, 0, '┌', nil, styleBorder)
	r.screen.SetContent(right, 0, '┐', nil, styleBorder)
	r.screen.SetContent(0, bottom, '└', nil, styleBorder)
	r.screen.SetContent(right, bottom, '┘', nil, styleBorder)
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, c := range []rune(s) {
		r.screen.SetContent(x+i, y, c, nil, style)
	}
}
