package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"minisnake/game"
)

// keyMap 转发给会话的按键
var keyMap = []struct {
	ebiten ebiten.Key
	game   game.Key
}{
	{ebiten.KeySpace, game.KeySpace},
	{ebiten.KeyArrowLeft, game.KeyLeft},
	{ebiten.KeyArrowUp, game.KeyUp},
	{ebiten.KeyArrowRight, game.KeyRight},
	{ebiten.KeyArrowDown, game.KeyDown},
}

// GameKey ebiten 按键对应的游戏按键
func GameKey(k ebiten.Key) (game.Key, bool) {
	for _, m := range keyMap {
		if m.ebiten == k {
			return m.game, true
		}
	}
	return 0, false
}
