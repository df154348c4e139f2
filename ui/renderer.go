package ui

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"classic-snake/game/types"
	"classic-snake/session"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	hudHeight = 28 // Status band under the arena
	fontSize  = 18
)

// Sprite file names looked up in the assets directory.
var (
	SegmentSprite = "segment.png"
	HeadSprite    = "head.png"
	FoodSprites   = []string{"apple.png", "cherry.png"}
)

// Fallback colors per food variant when a sprite is missing.
var foodColors = []rl.Color{rl.Green, rl.Red, rl.Orange, rl.Purple}

// Renderer reads session state and holds the textures used to draw it.
// Missing textures are drawn as plain rectangles.
type Renderer struct {
	tile int32
	grid types.Grid

	segment rl.Texture2D
	head    rl.Texture2D
	foods   []rl.Texture2D
}

// WindowSize returns the window dimensions for grid drawn at tile pixels per cell.
func WindowSize(grid types.Grid, tile int) (int32, int32) {
	return int32(grid.Width * tile), int32(grid.Height*tile + hudHeight)
}

// NewRenderer loads sprites from assetsDir. It must run after the window exists.
func NewRenderer(grid types.Grid, tile int, assetsDir string) *Renderer {
	r := &Renderer{
		tile: int32(tile),
		grid: grid,
	}
	r.segment = loadTexture(assetsDir, SegmentSprite)
	r.head = loadTexture(assetsDir, HeadSprite)
	for _, name := range FoodSprites {
		r.foods = append(r.foods, loadTexture(assetsDir, name))
	}
	return r
}

func loadTexture(dir, name string) rl.Texture2D {
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err != nil {
		log.Printf("[snake] texture %s unavailable, drawing shapes instead: %v", path, err)
		return rl.Texture2D{}
	}
	return rl.LoadTexture(path)
}

func loaded(t rl.Texture2D) bool { return t.ID != 0 }

// Close releases the textures.
func (r *Renderer) Close() {
	for _, t := range append([]rl.Texture2D{r.segment, r.head}, r.foods...) {
		if loaded(t) {
			rl.UnloadTexture(t)
		}
	}
}

func (r *Renderer) Draw(s *session.Session) {
	g := s.Game()

	rl.BeginDrawing()
	r.drawBackground()

	for i, segment := range g.Body() {
		if i == 0 {
			continue
		}
		r.drawCell(segment, r.segment, rl.DarkGreen)
	}
	r.drawCell(g.Head(), r.head, rl.Lime)

	if g.HasFood() {
		v := g.FoodVariant()
		var tex rl.Texture2D
		if v < len(r.foods) {
			tex = r.foods[v]
		}
		r.drawCell(g.Food(), tex, foodColors[v%len(foodColors)])
	}

	r.drawHUD(s)
	rl.EndDrawing()
}

// drawBackground clears to dark gray and marks every cell center with a dot.
func (r *Renderer) drawBackground() {
	rl.ClearBackground(rl.DarkGray)
	half := float32(r.tile) * 0.5
	for x := 0; x < r.grid.Width; x++ {
		for y := 0; y < r.grid.Height; y++ {
			rl.DrawCircle(
				int32(x)*r.tile+int32(half),
				int32(y)*r.tile+int32(half),
				float32(r.tile)*0.1,
				rl.Gray)
		}
	}
}

func (r *Renderer) drawCell(p types.Point, tex rl.Texture2D, fallback rl.Color) {
	if !r.grid.Contains(p) {
		return
	}
	x := float32(int32(p.X) * r.tile)
	y := float32(int32(p.Y) * r.tile)
	size := float32(r.tile)

	if !loaded(tex) {
		rl.DrawRectangle(int32(x), int32(y), r.tile, r.tile, fallback)
		return
	}
	rl.DrawTexturePro(tex,
		rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height)),
		rl.NewRectangle(x, y, size, size),
		rl.NewVector2(0, 0),
		0,
		rl.White)
}

func (r *Renderer) drawHUD(s *session.Session) {
	g := s.Game()
	top := int32(r.grid.Height) * r.tile
	width := int32(r.grid.Width) * r.tile
	rl.DrawRectangle(0, top, width, hudHeight, rl.Black)

	label := fmt.Sprintf("Score: %d  Best: %d  Games: %d", g.Score(), s.Best(), s.GamesPlayed())
	rl.DrawText(label, 6, top+(hudHeight-fontSize)/2, fontSize, rl.RayWhite)

	if !g.Alive() {
		msg := "Game over - press any key"
		tw := rl.MeasureText(msg, fontSize*3/2)
		rl.DrawText(msg, (width-tw)/2, top/2, fontSize*3/2, rl.Yellow)
	}
}
