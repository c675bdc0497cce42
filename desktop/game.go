package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"minisnake/game"
)

// Game 桌面宿主：ebiten 自己的固定频率循环驱动会话
// Update 与 Draw 都在 ebiten 的主循环里调用，不需要 Session.Start
type Game struct {
	session  *game.Session
	renderer *Renderer
	width    int
	height   int
	log      *zap.SugaredLogger
}

// NewGame session 需已 Initialise(width, height)
func NewGame(session *game.Session, width, height int, log *zap.SugaredLogger) *Game {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Game{
		session:  session,
		renderer: NewRenderer(),
		width:    width,
		height:   height,
		log:      log,
	}
}

// Run 打开窗口并阻塞到窗口关闭或按下 Esc
func (g *Game) Run(title string) error {
	g.session.MoveToState(game.NewWelcome())

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(g.session.Config().TicksPerSecond)
	// 欢迎画面只画一次，不能每帧清屏
	ebiten.SetScreenClearedEveryFrame(false)

	g.log.Infow("desktop window opened", "size", [2]int{g.width, g.height},
		"tps", g.session.Config().TicksPerSecond)
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.log.Infow("quit requested", "score", g.session.Snapshot().Score)
		return ebiten.Termination
	}
	for _, m := range keyMap {
		if inpututil.IsKeyJustPressed(m.ebiten) {
			g.session.KeyDown(m.game)
		}
		if inpututil.IsKeyJustReleased(m.ebiten) {
			g.session.KeyUp(m.game)
		}
	}
	g.session.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Target(screen)
	g.session.Draw(g.renderer)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
