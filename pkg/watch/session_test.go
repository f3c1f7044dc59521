package watch

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSession_Apply(t *testing.T) {
	s := NewSession()
	s.SetActive("routes/api.php")

	ran := false
	if ok := s.Apply("routes/api.php", func() { ran = true }); !ok || !ran {
		t.Error("apply for the active document should run")
	}
}

func TestSession_DropsStaleResults(t *testing.T) {
	s := NewSession()
	s.SetActive("routes/api.php")
	s.SetActive("routes/web.php")

	ran := false
	if ok := s.Apply("routes/api.php", func() { ran = true }); ok || ran {
		t.Error("apply for a superseded document must be dropped")
	}

	if !s.Apply("routes/web.php", func() {}) {
		t.Error("apply for the current document should run")
	}
}

func TestSession_AppliesDoNotOverlap(t *testing.T) {
	s := NewSession()
	s.SetActive("routes/api.php")

	var inside, overlapped atomic.Bool
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Apply("routes/api.php", func() {
				if !inside.CompareAndSwap(false, true) {
					overlapped.Store(true)
				}
				time.Sleep(5 * time.Millisecond)
				inside.Store(false)
			})
		}()
	}
	wg.Wait()

	if overlapped.Load() {
		t.Error("concurrent applies must run one at a time")
	}
}

func TestSession_Active(t *testing.T) {
	s := NewSession()
	if s.Active() != "" {
		t.Errorf("new session active = %q, want empty", s.Active())
	}
	s.SetActive("x.php")
	if s.Active() != "x.php" {
		t.Errorf("active = %q, want x.php", s.Active())
	}
}
