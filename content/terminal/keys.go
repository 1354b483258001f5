package terminal

import (
	"io"
	"time"

	"canvas-invaders/content/game"
)

// holdDuration 终端没有松开事件，超过这个时间没再收到按键就认为已经松开。
// 需要大于系统按键重复的首次延迟，否则按住方向键时飞船会顿一下。
const holdDuration = 300 * time.Millisecond

// Decoder 把终端输入的字节转换成按下/松开事件
type Decoder struct {
	lastSeen map[game.Key]time.Time
	pending  []byte // 被切断的转义序列
}

func NewDecoder() *Decoder {
	return &Decoder{lastSeen: make(map[game.Key]time.Time)}
}

// Feed 解析一段输入，返回按下的键，以及是否要求退出（q 或 ctrl-c）
func (d *Decoder) Feed(b []byte, now time.Time) (keys []game.Key, quit bool) {
	buf := append(d.pending, b...)
	d.pending = nil

	for i := 0; i < len(buf); i++ {
		c := buf[i]
		if c == '\x1b' {
			if i+2 >= len(buf) {
				d.pending = append([]byte(nil), buf[i:]...)
				break
			}
			if buf[i+1] == '[' {
				switch buf[i+2] {
				case 'C':
					keys = d.press(keys, game.KeyRight, now)
				case 'D':
					keys = d.press(keys, game.KeyLeft, now)
				}
				i += 2
				continue
			}
			continue
		}

		switch c {
		case ' ':
			keys = d.press(keys, game.KeyFire, now)
		case 'r', 'R':
			keys = d.press(keys, game.KeyCounterFire, now)
		case 'f', 'F':
			keys = d.press(keys, game.KeyFullscreen, now)
		case 'q', 'Q', '\x03':
			quit = true
		}
	}
	return keys, quit
}

func (d *Decoder) press(keys []game.Key, k game.Key, now time.Time) []game.Key {
	d.lastSeen[k] = now
	return append(keys, k)
}

// Expire 返回已经超过 holdDuration 没有再按的键，视为松开
func (d *Decoder) Expire(now time.Time) []game.Key {
	var released []game.Key
	for k, t := range d.lastSeen {
		if now.Sub(t) >= holdDuration {
			released = append(released, k)
			delete(d.lastSeen, k)
		}
	}
	return released
}

// startStream 在单独的 goroutine 中读取输入，读到错误或 EOF 时关闭通道
func startStream(r io.Reader) <-chan []byte {
	ch := make(chan []byte, 64)
	go func() {
		defer close(ch)
		buf := make([]byte, 256)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				ch <- append([]byte(nil), buf[:n]...)
			}
			if err != nil {
				return
			}
		}
	}()
	return ch
}
