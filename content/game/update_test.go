package game

import (
	"errors"
	"testing"

	"canvas-invaders/content/config"
)

func TestNewState(t *testing.T) {
	s := NewState()
	if s.Width != 800 || s.Height != 600 {
		t.Fatalf("canvas = %vx%v, want 800x600", s.Width, s.Height)
	}
	if s.Ship.X != 375 || s.Ship.Y != 540 {
		t.Errorf("ship at (%v, %v), want (375, 540)", s.Ship.X, s.Ship.Y)
	}
	if s.Score != 0 || s.Missed != 0 || s.Over() {
		t.Errorf("unexpected start state: score=%d missed=%d over=%v", s.Score, s.Missed, s.Over())
	}
}

func TestShipClampedAtLeftEdge(t *testing.T) {
	s := NewState()
	s.Ship.X = 0
	s.Ship.DX = -s.Ship.Speed
	for i := 0; i < 10; i++ {
		s.Update()
		if s.Ship.X != 0 {
			t.Fatalf("tick %d: ship x = %v, want 0", i, s.Ship.X)
		}
	}
}

func TestShipStaysInsideCanvas(t *testing.T) {
	s := NewState()
	velocities := []float64{5, 5, 5, -5, 0, 5, -5, -5}
	for i := 0; i < 2000; i++ {
		s.Ship.DX = velocities[i%len(velocities)] * float64(i%37)
		s.Update()
		if s.Ship.X < 0 || s.Ship.X > s.Width-s.Ship.W {
			t.Fatalf("tick %d: ship x = %v outside [0, %v]", i, s.Ship.X, s.Width-s.Ship.W)
		}
	}
}

func TestProjectileRemovedWhenAboveTop(t *testing.T) {
	s := NewState()
	s.Projectiles = []Projectile{{Rect: Rect{X: 100, Y: 14, W: 5, H: 10}, Speed: -7}}

	s.Update() // y = 7
	if len(s.Projectiles) != 1 || s.Projectiles[0].Y != 7 {
		t.Fatalf("after first tick: %+v", s.Projectiles)
	}
	s.Update() // y = 0，仍然保留
	if len(s.Projectiles) != 1 || s.Projectiles[0].Y != 0 {
		t.Fatalf("after second tick: %+v", s.Projectiles)
	}
	s.Update() // y = -7，移除
	if len(s.Projectiles) != 0 {
		t.Fatalf("projectile with negative y kept: %+v", s.Projectiles)
	}
}

func TestProjectilesDoNotHitInvaders(t *testing.T) {
	s := NewState()
	s.Invaders = []Invader{newInvader(100)}
	s.Projectiles = []Projectile{{Rect: Rect{X: 110, Y: 20, W: 5, H: 10}, Speed: -7}}

	s.Update()
	if len(s.Invaders) != 1 || s.Score != 0 {
		t.Errorf("player projectile destroyed an invader: invaders=%d score=%d", len(s.Invaders), s.Score)
	}
}

func TestRemovalDoesNotSkipEntries(t *testing.T) {
	s := NewState()
	// 两颗相邻的子弹同一帧离开顶部，逐个 splice 的写法会漏掉第二颗
	s.Projectiles = []Projectile{
		{Rect: Rect{X: 10, Y: 3, W: 5, H: 10}, Speed: -7},
		{Rect: Rect{X: 20, Y: 3, W: 5, H: 10}, Speed: -7},
		{Rect: Rect{X: 30, Y: 300, W: 5, H: 10}, Speed: -7},
	}
	s.Update()
	if len(s.Projectiles) != 1 || s.Projectiles[0].X != 30 || s.Projectiles[0].Y != 293 {
		t.Fatalf("projectiles after update = %+v", s.Projectiles)
	}

	s.Invaders = []Invader{
		{Rect: Rect{X: 0, Y: 559, W: 40, H: 40}, Speed: 2},
		{Rect: Rect{X: 100, Y: 559, W: 40, H: 40}, Speed: 2},
		{Rect: Rect{X: 200, Y: 100, W: 40, H: 40}, Speed: 2},
	}
	s.Update()
	if len(s.Invaders) != 1 || s.Invaders[0].X != 200 || s.Invaders[0].Y != 102 {
		t.Fatalf("invaders after update = %+v", s.Invaders)
	}
	if s.Missed != 2 {
		t.Errorf("missed = %d, want 2", s.Missed)
	}
}

func TestCounterProjectileKillsInvader(t *testing.T) {
	sound := &fakeSound{}
	s := NewState(WithKillSound(sound))
	s.Invaders = []Invader{
		{Rect: Rect{X: 100, Y: 100, W: 40, H: 40}, Speed: 2},
	}
	// 移动后 y = 130，与入侵者相交
	s.Counters = []Projectile{{Rect: Rect{X: 110, Y: 137, W: 5, H: 10}, Speed: -7}}

	s.Update()

	if len(s.Invaders) != 0 {
		t.Errorf("invaders = %d, want 0", len(s.Invaders))
	}
	if len(s.Counters) != 0 {
		t.Errorf("counter projectiles = %d, want 0", len(s.Counters))
	}
	if s.Score != 10 {
		t.Errorf("score = %d, want 10", s.Score)
	}
	if sound.plays != 1 {
		t.Errorf("kill sound played %d times, want 1", sound.plays)
	}
}

func TestCounterProjectileKillsOnlyFirstOverlap(t *testing.T) {
	s := NewState()
	s.Invaders = []Invader{
		{Rect: Rect{X: 90, Y: 100, W: 40, H: 40}, Speed: 2},
		{Rect: Rect{X: 100, Y: 100, W: 40, H: 40}, Speed: 2},
	}
	s.Counters = []Projectile{{Rect: Rect{X: 110, Y: 137, W: 5, H: 10}, Speed: -7}}

	s.Update()

	if len(s.Invaders) != 1 || s.Invaders[0].X != 100 {
		t.Fatalf("remaining invaders = %+v, want only the second one", s.Invaders)
	}
	if s.Score != 10 || len(s.Counters) != 0 {
		t.Errorf("score=%d counters=%d", s.Score, len(s.Counters))
	}
}

func TestCounterProjectileLeavesCanvas(t *testing.T) {
	s := NewState()
	s.Counters = []Projectile{
		{Rect: Rect{X: 10, Y: -5, W: 5, H: 10}, Speed: -7},  // 从顶部离开
		{Rect: Rect{X: 20, Y: 598, W: 5, H: 10}, Speed: 7},  // 从底部离开
		{Rect: Rect{X: 30, Y: 300, W: 5, H: 10}, Speed: -7}, // 保留
	}
	s.Update()
	if len(s.Counters) != 1 || s.Counters[0].X != 30 {
		t.Fatalf("counters = %+v", s.Counters)
	}
}

func TestKillSoundErrorIsIgnored(t *testing.T) {
	sound := &fakeSound{err: errors.New("not ready")}
	s := NewState(WithKillSound(sound))
	s.Invaders = []Invader{{Rect: Rect{X: 100, Y: 100, W: 40, H: 40}, Speed: 2}}
	s.Counters = []Projectile{{Rect: Rect{X: 110, Y: 137, W: 5, H: 10}, Speed: -7}}

	s.Update()
	if s.Score != 10 || sound.plays != 1 {
		t.Errorf("score=%d plays=%d", s.Score, sound.plays)
	}
}

func TestMissIncrement(t *testing.T) {
	testCases := []struct {
		before, after int
		over          bool
	}{
		{0, 1, false},
		{9, 10, false},
		{10, 12, false},
		{22, 24, false},
		{23, 25, true},
		{24, 26, true},
	}
	for _, tc := range testCases {
		s := NewState()
		s.Missed = tc.before
		s.miss()
		if s.Missed != tc.after || s.Over() != tc.over {
			t.Errorf("miss from %d: got missed=%d over=%v, want %d %v", tc.before, s.Missed, s.Over(), tc.after, tc.over)
		}
	}
}

func TestTwentyFiveMissesEndTheGame(t *testing.T) {
	s := NewState()
	for i := 0; i < 25; i++ {
		s.Invaders = append(s.Invaders, newInvader(float64(i*30%760)))
		for !s.Over() && len(s.Invaders) > 0 {
			s.Update()
		}
		if s.Over() {
			break
		}
	}
	if s.Missed < config.MissLimit {
		t.Errorf("missed = %d, want >= %d", s.Missed, config.MissLimit)
	}
	if !s.Over() {
		t.Fatal("game not over")
	}

	// 结束后状态不再变化
	s.Invaders = []Invader{newInvader(0)}
	s.Ship.DX = 5
	x := s.Ship.X
	s.Update()
	if !s.Over() || s.Ship.X != x || s.Invaders[0].Y != 0 {
		t.Errorf("update ran after game over")
	}
}

func TestInvaderMissedAtBottomEdge(t *testing.T) {
	s := NewState()
	s.Invaders = []Invader{{Rect: Rect{X: 0, Y: 557, W: 40, H: 40}, Speed: 2}}
	s.Update() // 底边 599
	if len(s.Invaders) != 1 || s.Missed != 0 {
		t.Fatalf("invader removed too early: missed=%d", s.Missed)
	}
	s.Update() // 底边 601 >= 600
	if len(s.Invaders) != 0 || s.Missed != 1 {
		t.Fatalf("invader not missed: invaders=%d missed=%d", len(s.Invaders), s.Missed)
	}
}
