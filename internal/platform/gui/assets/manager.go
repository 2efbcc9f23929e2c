// Package assets holds the embedded tile images of the desktop front end.
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png" // Register PNG format
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

//go:embed images/*.png
var projectAssets embed.FS

// Tiles holds one image per shape, indexed by tetris.Shape.
type Tiles [tetris.ShapeZ + 1]*ebiten.Image

// Images holds decoded tiles before they are uploaded.
type Images [tetris.ShapeZ + 1]image.Image

// DecodeTiles reads and decodes images/<letter>.png for every shape.
func DecodeTiles() (Images, error) {
	return decodeTiles(projectAssets)
}

func decodeTiles(fsys fs.FS) (Images, error) {
	var out Images
	for _, shape := range tetris.Shapes {
		name := "images/" + shape.String() + ".png"
		img, err := decode(fsys, name)
		if err != nil {
			return out, err
		}
		out[shape] = img
	}
	return out, nil
}

func decode(fsys fs.FS, name string) (image.Image, error) {
	fileData, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("assets: failed to read image %q: %w", name, err)
	}

	img, _, err := image.Decode(bytes.NewReader(fileData))
	if err != nil {
		return nil, fmt.Errorf("assets: failed to decode image %q: %w", name, err)
	}
	return img, nil
}

// LoadTiles decodes the tiles and uploads them as Ebitengine images.
func LoadTiles() (Tiles, error) {
	var tiles Tiles
	images, err := DecodeTiles()
	if err != nil {
		return tiles, err
	}
	for _, shape := range tetris.Shapes {
		tiles[shape] = ebiten.NewImageFromImage(images[shape])
	}
	return tiles, nil
}
