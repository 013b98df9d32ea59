package task

type funcRunner struct {
	run func() error
}

func (r funcRunner) Run() error {
	return r.run()
}

// RunnerFunc adapts a plain callback to a Runner.
func RunnerFunc(fn func()) Runner {
	return funcRunner{run: func() error {
		fn()
		return nil
	}}
}
