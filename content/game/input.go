package game

type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyFire        // 空格，发射玩家子弹
	KeyCounterFire // r，发射反击子弹
	KeyFullscreen  // f，切换全屏
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyFire:
		return "fire"
	case KeyCounterFire:
		return "counter-fire"
	case KeyFullscreen:
		return "fullscreen"
	}
	return "unknown"
}

type Event struct {
	Key  Key
	Down bool
}

// Input 记录按住的键和本帧尚未处理的事件
type Input struct {
	held  map[Key]bool
	queue []Event
}

func newInput() Input {
	return Input{held: make(map[Key]bool)}
}

// KeyDown 把按下事件放进队列，下一次 HandleInput 时处理
func (s *State) KeyDown(k Key) {
	s.input.queue = append(s.input.queue, Event{Key: k, Down: true})
}

func (s *State) KeyUp(k Key) {
	s.input.queue = append(s.input.queue, Event{Key: k, Down: false})
}

// Held 某个键当前是否按住
func (s *State) Held(k Key) bool {
	return s.input.held[k]
}

// HandleInput 按顺序处理队列中的事件，每个 tick 调用一次
func (s *State) HandleInput() {
	for _, e := range s.input.queue {
		if e.Down {
			s.keyDown(e.Key)
		} else {
			s.keyUp(e.Key)
		}
	}
	s.input.queue = s.input.queue[:0]
}

func (s *State) keyDown(k Key) {
	s.input.held[k] = true
	switch k {
	case KeyLeft:
		s.Ship.DX = -s.Ship.Speed
	case KeyRight:
		s.Ship.DX = s.Ship.Speed
	case KeyFire:
		if !s.Over() {
			s.shoot()
		}
	case KeyCounterFire:
		if !s.Over() {
			s.shootCounter()
		}
	case KeyFullscreen:
		s.toggleFullscreen()
	}
}

func (s *State) keyUp(k Key) {
	s.input.held[k] = false
	if !s.input.held[KeyLeft] && !s.input.held[KeyRight] {
		s.Ship.DX = 0
	}
}
