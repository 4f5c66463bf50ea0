// Package render draws atlas-backed sprites.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/stepanim/internal/ecs"
	"github.com/younwookim/stepanim/internal/infrastructure/config"
)

// AtlasLayout is a uniform grid of tiles, indexed row-major from the top-left
type AtlasLayout struct {
	TileWidth  int
	TileHeight int
	Columns    int
	Rows       int
}

// Len returns the number of tiles in the grid
func (l AtlasLayout) Len() int {
	return l.Columns * l.Rows
}

// Rect returns the sheet rectangle of tile index.
// Out of range indices are clamped to the grid.
func (l AtlasLayout) Rect(index int) image.Rectangle {
	if index < 0 {
		index = 0
	}
	if n := l.Len(); n > 0 && index >= n {
		index = n - 1
	}
	col, row := 0, 0
	if l.Columns > 0 {
		col = index % l.Columns
		row = index / l.Columns
	}
	x := col * l.TileWidth
	y := row * l.TileHeight
	return image.Rect(x, y, x+l.TileWidth, y+l.TileHeight)
}

// Size returns the pixel size of the whole sheet
func (l AtlasLayout) Size() (int, int) {
	return l.Columns * l.TileWidth, l.Rows * l.TileHeight
}

// Atlas is a sprite sheet with its grid layout
type Atlas struct {
	Sheet  *ebiten.Image
	Layout AtlasLayout
}

// LoadAtlas decodes a sheet image from fsys
func LoadAtlas(fsys fs.FS, name string, layout AtlasLayout) (*Atlas, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read atlas %q: %w", name, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode atlas %q: %w", name, err)
	}

	w, h := layout.Size()
	if b := img.Bounds(); b.Dx() < w || b.Dy() < h {
		return nil, fmt.Errorf("atlas %q is %dx%d, layout needs %dx%d", name, b.Dx(), b.Dy(), w, h)
	}

	return &Atlas{Sheet: ebiten.NewImageFromImage(img), Layout: layout}, nil
}

// PlaceholderAtlas builds a sheet of flat colored tiles so the game runs
// without art. Each row gets its own hue and frames get lighter left to right.
func PlaceholderAtlas(layout AtlasLayout) *Atlas {
	w, h := layout.Size()
	sheet := ebiten.NewImage(w, h)
	for i := 0; i < layout.Len(); i++ {
		tile := sheet.SubImage(layout.Rect(i)).(*ebiten.Image)
		tile.Fill(PlaceholderColor(layout, i))
	}
	return &Atlas{Sheet: sheet, Layout: layout}
}

// PlaceholderColor returns the flat color used for tile index
func PlaceholderColor(layout AtlasLayout, index int) color.RGBA {
	row, col := 0, 0
	if layout.Columns > 0 {
		row = index / layout.Columns
		col = index % layout.Columns
	}
	shade := uint8(120)
	if layout.Columns > 1 {
		shade += uint8(col * 120 / (layout.Columns - 1))
	}
	if row%2 == 0 {
		return color.RGBA{shade, shade, 80, 255}
	}
	return color.RGBA{80, shade, shade, 255}
}

// Frame returns the sub-image of tile index
func (a *Atlas) Frame(index int) *ebiten.Image {
	return a.Sheet.SubImage(a.Layout.Rect(index)).(*ebiten.Image)
}

// DrawSprite draws the sprite's atlas tile with its top-left at (x, y).
// FlipX mirrors the tile in place.
func DrawSprite(dst *ebiten.Image, atlas *Atlas, sprite ecs.Sprite, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM = SpriteGeoM(atlas.Layout, sprite, x, y)
	dst.DrawImage(atlas.Frame(sprite.AtlasIndex), op)
}

// SpriteGeoM returns the transform used by DrawSprite
func SpriteGeoM(layout AtlasLayout, sprite ecs.Sprite, x, y float64) ebiten.GeoM {
	var m ebiten.GeoM
	if sprite.FlipX {
		m.Scale(-1, 1)
		m.Translate(float64(layout.TileWidth), 0)
	}
	m.Translate(x, y)
	return m
}

// LayoutFromConfig converts the player's atlas config to a layout
func LayoutFromConfig(cfg config.AtlasConfig) AtlasLayout {
	return AtlasLayout{
		TileWidth:  cfg.TileWidth,
		TileHeight: cfg.TileHeight,
		Columns:    cfg.Columns,
		Rows:       cfg.Rows,
	}
}
