package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"canvas-invaders/content/game"
)

func TestKeyMap(t *testing.T) {
	want := map[ebiten.Key]game.Key{
		ebiten.KeyArrowLeft:  game.KeyLeft,
		ebiten.KeyArrowRight: game.KeyRight,
		ebiten.KeySpace:      game.KeyFire,
		ebiten.KeyR:          game.KeyCounterFire,
		ebiten.KeyF:          game.KeyFullscreen,
	}
	for k, v := range want {
		if got, ok := keyMap[k]; !ok || got != v {
			t.Errorf("keyMap[%v] = %v, %v; want %v", k, got, ok, v)
		}
	}
	if _, ok := keyMap[ebiten.KeyQ]; ok {
		t.Errorf("unexpected mapping for Q")
	}
}

func TestLoadSoundErrors(t *testing.T) {
	if _, err := loadSound(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "kill.ogg")
	if err := os.WriteFile(path, []byte("not a sound"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadSound(path); err == nil {
		t.Error("expected error for unsupported format")
	}
}
