// pkg/render/engo/assets.go
package engo

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"

	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"golang.org/x/image/font/gofont/gomono"
)

// hudFontURL is the virtual file the embedded HUD font is registered under
const hudFontURL = "gomono.ttf"

// landerPattern is drawn with row 0 at the top, which is the lander's local up
var landerPattern = [][]int{
	{0, 0, 0, 0, 1, 1, 0, 0, 0, 0},
	{0, 0, 0, 1, 1, 1, 1, 0, 0, 0},
	{0, 0, 1, 1, 2, 2, 1, 1, 0, 0},
	{0, 0, 1, 2, 2, 2, 2, 1, 0, 0},
	{0, 0, 1, 1, 1, 1, 1, 1, 0, 0},
	{0, 1, 1, 1, 1, 1, 1, 1, 1, 0},
	{0, 1, 0, 0, 1, 1, 0, 0, 1, 0},
	{1, 0, 0, 0, 1, 1, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 1, 0, 0, 0, 0, 0, 0, 1, 1},
}

// particlePattern is a single white pixel; sprites tint and scale it
var particlePattern = [][]int{{1}}

// patternPalette maps pattern values to colours; 0 is transparent
var patternPalette = map[int]color.NRGBA{
	1: {220, 220, 230, 255},
	2: {90, 160, 230, 255},
}

// AssetManager handles creating the scene's textures and font
type AssetManager struct {
	landerSprite   common.Drawable
	particleSprite common.Drawable
	hudFont        *common.Font
}

// NewAssetManager creates an empty asset manager
func NewAssetManager() *AssetManager {
	return &AssetManager{}
}

// LoadAssets creates every texture and the HUD font. It needs an OpenGL
// context, so it must run from a scene's Setup.
func (am *AssetManager) LoadAssets() error {
	am.landerSprite = convertToEngoTexture(patternImage(landerPattern))
	am.particleSprite = convertToEngoTexture(patternImage(particlePattern))

	if err := engo.Files.LoadReaderData(hudFontURL, bytes.NewReader(gomono.TTF)); err != nil {
		return err
	}
	am.hudFont = &common.Font{
		URL:  hudFontURL,
		FG:   color.White,
		Size: 16,
	}
	return am.hudFont.CreatePreloaded()
}

// patternImage draws a pattern into an image, one pixel per cell
func patternImage(pattern [][]int) *image.NRGBA {
	height := len(pattern)
	width := 0
	for _, row := range pattern {
		if len(row) > width {
			width = len(row)
		}
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.NRGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)
	for y, row := range pattern {
		for x, pixel := range row {
			if c, ok := patternPalette[pixel]; ok {
				img.SetNRGBA(x, y, c)
			}
		}
	}
	return img
}

func convertToEngoTexture(img *image.NRGBA) common.Drawable {
	texture := common.NewImageObject(img)
	return common.NewTextureSingle(texture)
}

// LanderSprite returns the lander texture
func (am *AssetManager) LanderSprite() common.Drawable {
	return am.landerSprite
}

// ParticleSprite returns the exhaust particle texture
func (am *AssetManager) ParticleSprite() common.Drawable {
	return am.particleSprite
}

// HUDFont returns the font used for HUD text
func (am *AssetManager) HUDFont() *common.Font {
	return am.hudFont
}
