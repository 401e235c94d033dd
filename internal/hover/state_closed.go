package hover

// stateClosed is the idle terminal state: nothing rendered, no input
// intercepted. Entering it scales the tab out and then drops it.
type stateClosed struct {
	env *Env
}

func newStateClosed() *stateClosed {
	return &stateClosed{}
}

func (s *stateClosed) kind() StateKind {
	return StateClosed
}

func (s *stateClosed) takeControl(env *Env, ready func()) {
	s.env = env
	env.Dragger().Deactivate()
	env.Touch().Deactivate()
	env.ExitZone().Deactivate()

	tab := env.Tab()
	if tab == nil {
		ready()
		return
	}
	alive := env.Guard()
	tab.Disappear(func() {
		if !alive() {
			return
		}
		env.SetTab(nil)
		ready()
	})
}

func (s *stateClosed) giveUpControl(next StateKind) {}
