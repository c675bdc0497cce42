package game

// stateStack 画面栈，只有栈顶画面接收 update/draw/按键
type stateStack struct {
	screens []Screen
}

func (st *stateStack) current() Screen {
	if len(st.screens) == 0 {
		return nil
	}
	return st.screens[len(st.screens)-1]
}

func (st *stateStack) depth() int { return len(st.screens) }

// replaceTop 离开并移除栈顶，进入新画面后压栈
func (st *stateStack) replaceTop(s *Session, next Screen) {
	if cur := st.current(); cur != nil {
		if l, ok := cur.(Leaver); ok {
			l.Leave(s)
		}
		st.screens = st.screens[:len(st.screens)-1]
	}
	st.push(s, next)
}

func (st *stateStack) push(s *Session, next Screen) {
	if e, ok := next.(Enterer); ok {
		e.Enter(s)
	}
	st.screens = append(st.screens, next)
}

func (st *stateStack) pop(s *Session) {
	cur := st.current()
	if cur == nil {
		return
	}
	if l, ok := cur.(Leaver); ok {
		l.Leave(s)
	}
	st.screens[len(st.screens)-1] = nil
	st.screens = st.screens[:len(st.screens)-1]
}
