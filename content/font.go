package main

import (
	"bytes"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	arcadeFaceSource *text.GoTextFaceSource
	arcadeFaces      = map[float64]*text.GoTextFace{} // 按字号缓存
)

func InitFont() {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		log.Fatal("load font", "err", err)
	}
	arcadeFaceSource = s
}

// arcadeFace 返回指定字号的字体，HUD 和结束画面只用到两种字号
func arcadeFace(size float64) *text.GoTextFace {
	if f, ok := arcadeFaces[size]; ok {
		return f
	}
	f := &text.GoTextFace{
		Source: arcadeFaceSource,
		Size:   size,
	}
	arcadeFaces[size] = f
	return f
}
