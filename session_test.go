package calc_test

import (
	"reflect"
	"sync"
	"testing"

	"github.com/zephyrtronium/calc"
)

func TestSessionConcurrent(t *testing.T) {
	s := calc.NewSession(calc.SetVar("n", 0))
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Eval("n=sqrt(n*n)+1"); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()
	if n, _ := s.Lookup("n"); n != 50 {
		t.Errorf("n should be 50 but is %g", n)
	}
}

func TestSessionBindings(t *testing.T) {
	s := calc.NewSession()
	for _, src := range []string{"b=2", "a=1", "c=a+b"} {
		if _, err := s.Eval(src); err != nil {
			t.Fatalf("evaluating %q: %v", src, err)
		}
	}
	want := []calc.Binding{{Name: "_", Value: 3}, {Name: "a", Value: 1}, {Name: "b", Value: 2}, {Name: "c", Value: 3}}
	if got := s.Bindings(); !reflect.DeepEqual(got, want) {
		t.Errorf("wrong bindings:\n\twant %v\n\tgot  %v", want, got)
	}
	if missing := s.Remove("a", "q"); !reflect.DeepEqual(missing, []string{"q"}) {
		t.Errorf("wrong missing names %q", missing)
	}
	if _, ok := s.Lookup("a"); ok {
		t.Error("a still bound")
	}
	s.Clear()
	if got := s.Bindings(); len(got) != 0 {
		t.Errorf("bindings after Clear: %v", got)
	}
}

func TestSessionSharedEnv(t *testing.T) {
	env := new(calc.Env).Set("n", 0)
	a := calc.NewSession(calc.UseEnv(env))
	b := calc.NewSession(calc.UseEnv(env))
	// The sessions' own locks don't cover each other.
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		for _, s := range []*calc.Session{a, b} {
			go func(s *calc.Session) {
				defer wg.Done()
				mu.Lock()
				defer mu.Unlock()
				if _, err := s.Eval("n=n+1"); err != nil {
					t.Error(err)
				}
			}(s)
		}
	}
	wg.Wait()
	if n, _ := a.Lookup("n"); n != 40 {
		t.Errorf("n should be 40 but is %g", n)
	}
	if n, _ := env.Lookup("n"); n != 40 {
		t.Errorf("shared env has n = %g", n)
	}
}
