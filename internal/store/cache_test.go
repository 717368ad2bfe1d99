package store

import (
	"sync"
	"testing"
)

func TestCacheEmpty(t *testing.T) {
	c := NewCache()
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
	if _, ok := c.Lookup("alice/capital"); ok {
		t.Error("Lookup on empty cache reported a hit")
	}
}

func TestCacheReplace(t *testing.T) {
	c := NewCache()
	c.Replace(map[string]string{
		"alice/capital": "what is the capital of {country}?",
		"bob/greeting":  "hello",
	})

	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	content, ok := c.Lookup("alice/capital")
	if !ok || content != "what is the capital of {country}?" {
		t.Errorf("Lookup() = %q, %v", content, ok)
	}

	// A new snapshot fully replaces the old one.
	c.Replace(map[string]string{"alice/other": "x"})
	if _, ok := c.Lookup("bob/greeting"); ok {
		t.Error("stale entry survived Replace")
	}
	if c.Len() != 1 {
		t.Errorf("Len() after replace = %d, want 1", c.Len())
	}
}

func TestCacheConcurrentReadersDuringReplace(t *testing.T) {
	c := NewCache()
	c.Replace(map[string]string{"alice/a": "1"})

	var wg sync.WaitGroup
	stop := make(chan struct{})

	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				items := c.Items()
				// Snapshots are all-or-nothing: either generation is
				// complete, never a mix.
				if _, ok := items["alice/a"]; ok && len(items) != 1 {
					t.Error("observed mixed snapshot")
					return
				}
			}
		}()
	}

	for i := 0; i < 1000; i++ {
		if i%2 == 0 {
			c.Replace(map[string]string{"alice/a": "1"})
		} else {
			c.Replace(map[string]string{"bob/b": "2", "bob/c": "3"})
		}
	}
	close(stop)
	wg.Wait()
}
