package main

import (
	"bytes"
	"image"
	"image/color"
	_ "image/png"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/images"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"canvas-invaders/content/config"
	"canvas-invaders/content/game"
)

var (
	runnerImage  *ebiten.Image
	shipImage    *ebiten.Image
	invaderImage *ebiten.Image
)

func InitImage(settings config.Settings) {
	img, _, err := image.Decode(bytes.NewReader(images.Runner_png))
	if err != nil {
		log.Fatal("decode runner image", "err", err)
	}
	runnerImage = ebiten.NewImageFromImage(img)

	// 默认入侵者使用跑步动画的第一帧
	invaderImage = runnerImage.SubImage(image.Rect(
		config.FrameOX, config.FrameOY,
		config.FrameOX+config.FrameWidth, config.FrameOY+config.FrameHeight,
	)).(*ebiten.Image)
	shipImage = newShipImage()

	if settings.ShipImage != "" {
		if img, err := loadImage(settings.ShipImage); err != nil {
			log.Warn("load ship image, using default", "path", settings.ShipImage, "err", err)
		} else {
			shipImage = img
		}
	}
	if settings.InvaderImage != "" {
		if img, err := loadImage(settings.InvaderImage); err != nil {
			log.Warn("load invader image, using default", "path", settings.InvaderImage, "err", err)
		} else {
			invaderImage = img
		}
	}
}

func loadImage(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	return img, err
}

// newShipImage 画一个简单的飞船：机身、机翼和驾驶舱
func newShipImage() *ebiten.Image {
	img := ebiten.NewImage(config.ShipWidth, config.ShipHeight)
	body := color.RGBA{0x40, 0xC0, 0xFF, 0xFF}
	vector.DrawFilledRect(img, 20, 0, 10, 50, body, false)
	vector.DrawFilledRect(img, 0, 30, 50, 14, body, false)
	vector.DrawFilledRect(img, 22, 8, 6, 10, color.White, false)
	return img
}

func spriteImage(sprite game.Sprite) *ebiten.Image {
	switch sprite {
	case game.SpriteShip:
		return shipImage
	case game.SpriteInvader:
		return invaderImage
	}
	return nil
}
