package calc

import (
	"github.com/ahrtr/gocontainer/set"
)

// ResultName is the variable that holds the result of the most recent
// successful evaluation.
const ResultName = "_"

// Env is a binding environment mapping variable names to values. The zero
// value is an empty environment ready to use. It is not safe to use an Env
// concurrently.
type Env struct {
	names map[string]float64
}

// Binding is a single name and its value.
type Binding struct {
	Name  string
	Value float64
}

// Lookup returns the value bound to name and whether there is one.
func (env *Env) Lookup(name string) (float64, bool) {
	v, ok := env.names[name]
	return v, ok
}

// Set binds name to v, replacing any previous binding. Returns env for
// chaining.
func (env *Env) Set(name string, v float64) *Env {
	if env.names == nil {
		env.names = make(map[string]float64)
	}
	env.names[name] = v
	return env
}

// Len returns the number of bindings.
func (env *Env) Len() int {
	return len(env.names)
}

// Names returns the bound names in ascending order.
func (env *Env) Names() []string {
	names := make([]string, 0, len(env.names))
	for k := range env.names {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

// Bindings returns all bindings in ascending order of name.
func (env *Env) Bindings() []Binding {
	names := env.Names()
	r := make([]Binding, len(names))
	for i, name := range names {
		r[i] = Binding{Name: name, Value: env.names[name]}
	}
	return r
}

// Clear removes every binding.
func (env *Env) Clear() {
	for k := range env.names {
		delete(env.names, k)
	}
}

// Remove removes the bindings of the given names. The result lists, once
// each and in ascending order, the names that were not bound.
func (env *Env) Remove(names ...string) (missing []string) {
	seen := set.New()
	for _, name := range names {
		if seen.Contains(name) {
			continue
		}
		seen.Add(name)
		if _, ok := env.names[name]; !ok {
			missing = append(missing, name)
			continue
		}
		delete(env.names, name)
	}
	sortstrs(missing)
	return missing
}

// Clone returns an independent copy of env.
func (env *Env) Clone() *Env {
	n := &Env{names: make(map[string]float64, len(env.names))}
	for k, v := range env.names {
		n.names[k] = v
	}
	return n
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}
