package executor

import "context"

// Mock is an Executor whose behaviour is supplied by tests.
type Mock struct {
	ExecuteFunc func(ctx context.Context, dir string, name string, args ...string) (string, error)
	Calls       [][]string
}

func (m *Mock) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return m.ExecuteInDir(ctx, "", name, args...)
}

func (m *Mock) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	m.Calls = append(m.Calls, append([]string{name}, args...))
	if m.ExecuteFunc == nil {
		return "", nil
	}
	return m.ExecuteFunc(ctx, dir, name, args...)
}
