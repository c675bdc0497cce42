package game

// Screen 画面：Welcome / Round / GameOver
// 各钩子都是可选能力，按需实现下面的接口
type Screen interface {
	Name() string
}

type Enterer interface {
	Enter(s *Session)
}

type Leaver interface {
	Leave(s *Session)
}

type Updater interface {
	Update(s *Session)
}

type Drawer interface {
	Draw(s *Session, r Renderer)
}

type KeyDowner interface {
	KeyDown(s *Session, key Key)
}

type KeyUpper interface {
	KeyUp(s *Session, key Key)
}
