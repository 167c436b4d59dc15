package internal

// Env is a lexical scope. Bindings are only ever written into the scope
// that owns them; enclosing scopes are read-only from inside.
type Env struct {
	enclosing *Env
	values    map[string]Object
}

// NewEnv creates a scope nested in enclosing, or a root scope when nil
func NewEnv(enclosing *Env) *Env {
	return &Env{
		enclosing: enclosing,
		values:    make(map[string]Object),
	}
}

// Get resolves name from this scope outwards
func (e *Env) Get(name string) (Object, bool) {
	for env := e; env != nil; env = env.enclosing {
		if value, ok := env.values[name]; ok {
			return value, true
		}
	}
	return nil, false
}

// Define binds name in this scope, replacing any previous binding
func (e *Env) Define(name string, value Object) {
	e.values[name] = value
}

func (e *Env) depth() int {
	d := 0
	for env := e.enclosing; env != nil; env = env.enclosing {
		d++
	}
	return d
}
