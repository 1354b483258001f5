package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/math/f64"

	"canvas-invaders/content/game"
)

// Surface 把 game.Surface 的绘制调用落到 ebiten 的屏幕上
type Surface struct {
	dst *ebiten.Image
}

func (s *Surface) Clear() {
	s.dst.Fill(color.Black)
}

func (s *Surface) FillRect(r game.Rect, c color.Color) {
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func (s *Surface) DrawSprite(sprite game.Sprite, r game.Rect) {
	img := spriteImage(sprite)
	if img == nil {
		return
	}
	scale := spriteScale(img, r)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale[0], scale[1])
	op.GeoM.Translate(r.X, r.Y)
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(img, op)
}

// spriteScale 图片缩放到目标矩形大小需要的比例
func spriteScale(img *ebiten.Image, r game.Rect) f64.Vec2 {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return f64.Vec2{1, 1}
	}
	return f64.Vec2{r.W / float64(b.Dx()), r.H / float64(b.Dy())}
}

func (s *Surface) DrawText(str string, x, y float64, style game.TextStyle) {
	face := arcadeFace(style.Size)
	op := &text.DrawOptions{}
	op.ColorScale.ScaleWithColor(style.Color)
	op.LineSpacing = style.Size
	if style.Center {
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		op.GeoM.Translate(x, y)
	} else {
		// y 是基线，text/v2 以行的顶部为原点
		op.GeoM.Translate(x, y-face.Metrics().HAscent)
	}
	text.Draw(s.dst, str, face, op)
}
