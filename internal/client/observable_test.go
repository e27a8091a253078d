package client

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObservable(t *testing.T) {
	o := NewObservable(1)

	var seen []int
	unsubscribe := o.Subscribe(func(v int) { seen = append(seen, v) })
	o.Set(2)
	o.Set(3)
	unsubscribe()
	o.Set(4)

	assert.Equal(t, []int{1, 2, 3}, seen)
	assert.Equal(t, 4, o.Get())
}

func TestObservableSubscriberMayReadBack(t *testing.T) {
	o := NewObservable("a")
	var got string
	o.Subscribe(func(string) { got = o.Get() })
	o.Set("b")
	assert.Equal(t, "b", got)
}

func TestObservableConcurrentSetsDeliverInOrder(t *testing.T) {
	o := NewObservable(0)

	var (
		mu   sync.Mutex
		last int
		seen int
	)
	o.Subscribe(func(v int) {
		mu.Lock()
		last = v
		seen++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			o.Set(v)
		}(i)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 51, seen)
	assert.Equal(t, o.Get(), last)
}

func TestObservableLateSubscriberSeesLatest(t *testing.T) {
	o := NewObservable("a")

	var wg sync.WaitGroup
	results := make([][]string, 10)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var got []string
			var mu sync.Mutex
			o.Subscribe(func(v string) {
				mu.Lock()
				got = append(got, v)
				mu.Unlock()
			})
			o.Set("b")
			mu.Lock()
			results[i] = append([]string(nil), got...)
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.NotEmpty(t, got)
		assert.Equal(t, "b", got[len(got)-1])
	}
}

func TestWriterNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewWriterNotifier(&buf)
	n.Show(Notification{Message: "saved", Style: StyleSuccess})
	n.Show(Notification{Message: "nope", Style: StyleError})
	assert.Equal(t, "✔ saved\n✖ nope\n", buf.String())
}
