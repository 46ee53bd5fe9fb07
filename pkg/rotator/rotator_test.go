package rotator

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotator_Next(t *testing.T) {
	tests := []struct {
		name    string
		proxies []string
		calls   int
		want    []string
	}{
		{
			name:    "three proxies wrap around after the last one",
			proxies: []string{"http://p1:8080", "http://p2:8080", "http://p3:8080"},
			calls:   4,
			want:    []string{"http://p1:8080", "http://p2:8080", "http://p3:8080", "http://p1:8080"},
		},
		{
			name:    "single proxy is returned every time",
			proxies: []string{"http://p1:8080"},
			calls:   3,
			want:    []string{"http://p1:8080", "http://p1:8080", "http://p1:8080"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.proxies)
			require.NoError(t, err)

			got := make([]string, 0, tt.calls)
			for i := 0; i < tt.calls; i++ {
				got = append(got, r.Next().String())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRotator_Next_empty(t *testing.T) {
	r, err := New(nil)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		if got := r.Next(); got != nil {
			t.Errorf("Rotator.Next() = %v, want nil for empty list", got)
		}
	}
}

func TestRotator_Next_fairness(t *testing.T) {
	proxies := []string{"http://p1:8080", "http://p2:8080", "http://p3:8080"}
	r, err := New(proxies)
	require.NoError(t, err)

	// 100 calls over 3 proxies: each proxy must be picked 33 or 34 times.
	counts := make(map[string]int)
	for i := 0; i < 100; i++ {
		counts[r.Next().String()]++
	}
	for _, p := range proxies {
		if counts[p] != 33 && counts[p] != 34 {
			t.Errorf("Rotator.Next() picked %s %d times, want 33 or 34", p, counts[p])
		}
	}
}

func TestRotator_Next_concurrent(t *testing.T) {
	proxies := []string{"http://p1:8080", "http://p2:8080", "http://p3:8080", "http://p4:8080"}
	r, err := New(proxies)
	require.NoError(t, err)

	const callers = 40
	const callsEach = 25 // 1000 calls total, 250 per proxy

	var wg sync.WaitGroup
	var mu sync.Mutex
	counts := make(map[string]int)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < callsEach; j++ {
				p := r.Next().String()
				mu.Lock()
				counts[p]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	for _, p := range proxies {
		assert.Equal(t, callers*callsEach/len(proxies), counts[p], "proxy %s", p)
	}
}

func TestNew_invalid(t *testing.T) {
	tests := []struct {
		name    string
		proxies []string
	}{
		{name: "missing scheme", proxies: []string{"p1:8080"}},
		{name: "garbage", proxies: []string{"://"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.proxies); err == nil {
				t.Errorf("New(%v) expected an error", tt.proxies)
			}
		})
	}
}

func TestRotator_ProxyFunc(t *testing.T) {
	r, err := New([]string{"http://p1:8080", "http://p2:8080"})
	require.NoError(t, err)

	fn := r.ProxyFunc()

	u, err := fn(nil)
	require.NoError(t, err)
	assert.Equal(t, "http://p1:8080", u.String())

	u, err = fn(nil)
	require.NoError(t, err)
	assert.Equal(t, "http://p2:8080", u.String())
}
