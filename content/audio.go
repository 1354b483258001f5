package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	raudio "github.com/hajimehoshi/ebiten/v2/examples/resources/audio"

	"canvas-invaders/content/config"
)

const sampleRate = 48000

var (
	audioContext *audio.Context
	killSound    *soundPlayer
)

// soundPlayer 每次播放前回到开头，上一次没播完也直接重播
type soundPlayer struct {
	player *audio.Player
}

func (s *soundPlayer) Play() error {
	if err := s.player.Rewind(); err != nil {
		return err
	}
	s.player.Play()
	return nil
}

func InitAudio(settings config.Settings) {
	if audioContext == nil {
		audioContext = audio.NewContext(sampleRate)
	}

	if settings.KillSound != "" {
		p, err := loadSound(settings.KillSound)
		if err == nil {
			killSound = &soundPlayer{player: p}
			return
		}
		log.Warn("load kill sound, using default", "path", settings.KillSound, "err", err)
	}

	jabD, err := wav.DecodeWithoutResampling(bytes.NewReader(raudio.Jab_wav))
	if err != nil {
		log.Fatal("decode kill sound", "err", err)
	}
	p, err := audioContext.NewPlayer(jabD)
	if err != nil {
		log.Fatal("create kill sound player", "err", err)
	}
	killSound = &soundPlayer{player: p}
}

func loadSound(path string) (*audio.Player, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s io.Reader
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		s, err = mp3.DecodeWithoutResampling(bytes.NewReader(b))
	case ".wav":
		s, err = wav.DecodeWithoutResampling(bytes.NewReader(b))
	default:
		return nil, fmt.Errorf("unsupported sound format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return audioContext.NewPlayer(s)
}
