package game

// EventKind 对局中发生的事件类型
type EventKind int

const (
	EventRoundStart EventKind = iota
	EventPickup
	EventAppleSpawned
	EventAppleEaten
	EventAppleExpired
	EventHazardSpawned
	EventDeath
)

func (k EventKind) String() string {
	switch k {
	case EventRoundStart:
		return "round_start"
	case EventPickup:
		return "pickup"
	case EventAppleSpawned:
		return "apple_spawned"
	case EventAppleEaten:
		return "apple_eaten"
	case EventAppleExpired:
		return "apple_expired"
	case EventHazardSpawned:
		return "hazard_spawned"
	case EventDeath:
		return "death"
	}
	return "unknown"
}

// Event 事件发生时的分数与有效步数
type Event struct {
	Kind  EventKind
	Score int
	Step  int
}

// Observer 在 Tick 线程中同步回调，实现方不应阻塞
type Observer interface {
	Observe(ev Event)
}

// ObserverFunc 函数适配器
type ObserverFunc func(ev Event)

func (f ObserverFunc) Observe(ev Event) { f(ev) }
