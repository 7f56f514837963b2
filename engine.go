package calc

import (
	"io"
	"strings"

	"fortio.org/log"
	"github.com/tevino/abool/v2"
)

// Engine evaluates expressions against a persistent binding environment.
// Bindings created by one evaluation are visible to the next. An Engine is not
// safe to use concurrently; use a Session for that.
type Engine struct {
	env   *Env
	funcs map[string]Func
	busy  *abool.AtomicBool
}

// Option is an option used when creating an engine.
type Option interface {
	engineOption()
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt  map[string]float64
	funcsopt map[string]Func
	envopt   struct {
		env *Env
	}
	constsopt struct{}
)

func (varopt) engineOption()    {}
func (varsopt) engineOption()   {}
func (funcsopt) engineOption()  {}
func (envopt) engineOption()    {}
func (constsopt) engineOption() {}

// SetVar sets the value of a variable in the engine's environment.
func SetVar(name string, val float64) Option {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the engine's
// environment.
func SetVars(vars map[string]float64) Option {
	return varsopt(vars)
}

// Funcs sets functions by name. A nil function disables the default function
// of that name, so that the name evaluates as a variable.
func Funcs(fns map[string]Func) Option {
	return funcsopt(fns)
}

// UseEnv makes the engine evaluate against env instead of a new environment.
// Variables set by other options are added to env.
//
// Engines and sessions that share env are not synchronized with each other.
// A Session's lock covers only its own calls, so concurrent use of a shared
// env needs outside locking.
func UseEnv(env *Env) Option {
	return envopt{env}
}

// WithConstants binds the mathematical constants returned by Constants.
func WithConstants() Option {
	return constsopt{}
}

// New creates an engine with an empty environment and the default functions.
// Options are applied in order.
func New(opts ...Option) *Engine {
	eng := Engine{
		env:   new(Env),
		funcs: DefaultFuncs(),
		busy:  abool.New(),
	}
	// The environment has to be decided before any variables are set.
	for _, opt := range opts {
		if o, ok := opt.(envopt); ok && o.env != nil {
			eng.env = o.env
		}
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			eng.env.Set(opt.name, opt.val)
		case varsopt:
			for k, v := range opt {
				eng.env.Set(k, v)
			}
		case funcsopt:
			for k, v := range opt {
				if v == nil {
					delete(eng.funcs, k)
					continue
				}
				eng.funcs[k] = v
			}
		case constsopt:
			for k, v := range Constants() {
				eng.env.Set(k, v)
			}
		case envopt:
			// Already done. Do nothing.
		default:
			panic("calc: unknown option type")
		}
	}
	return &eng
}

// Eval evaluates an expression and returns its result. On success, the result
// is bound to ResultName and, if the expression has the form name=expr, to
// name. A failed evaluation binds nothing, except that function arguments
// evaluated successfully before the failure keep their bindings.
//
// Eval returns ErrBusy if the engine is already evaluating an expression.
func (eng *Engine) Eval(expr string) (float64, error) {
	return eng.EvalFrom(strings.NewReader(expr))
}

// EvalFrom is like Eval but reads the expression from src until EOF.
func (eng *Engine) EvalFrom(src io.RuneScanner) (float64, error) {
	if !eng.busy.SetToIf(false, true) {
		return 0, ErrBusy
	}
	defer eng.busy.UnSet()
	r, err := eng.evaluate(lex(src), "", 0)
	if err != nil {
		log.LogVf("calc: evaluation failed: %v", err)
		return 0, err
	}
	log.LogVf("calc: result %g", r)
	return r, nil
}

// Env returns the engine's environment. Changes to it are visible to later
// evaluations.
func (eng *Engine) Env() *Env {
	return eng.env
}

// IsFunc reports whether name is a function known to the engine.
func (eng *Engine) IsFunc(name string) bool {
	return eng.funcs[name] != nil
}

// Eval is a shortcut to evaluate a single expression with a new engine.
func Eval(expr string, opts ...Option) (float64, error) {
	return New(opts...).Eval(expr)
}
