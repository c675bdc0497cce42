package game

// Key 按键码，与浏览器 KeyboardEvent.keyCode 一致
type Key int

const (
	KeySpace Key = 32
	KeyLeft  Key = 37
	KeyUp    Key = 38
	KeyRight Key = 39
	KeyDown  Key = 40
)

// Direction 方向键对应的方向；其它键返回 false
func (k Key) Direction() (Direction, bool) {
	switch k {
	case KeyLeft:
		return DirLeft, true
	case KeyUp:
		return DirUp, true
	case KeyRight:
		return DirRight, true
	case KeyDown:
		return DirDown, true
	}
	return 0, false
}
