package task

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSerialQueueRunsInPostOrder(t *testing.T) {
	q := NewSerialQueue(4)
	defer q.Stop()

	var got []int
	for i := 0; i < 100; i++ {
		i := i
		assert.True(t, q.Post(func() { got = append(got, i) }))
	}
	q.Sync()

	want := make([]int, 100)
	for i := range want {
		want[i] = i
	}
	assert.Equal(t, want, got)
}

func TestSerialQueueNeverOverlaps(t *testing.T) {
	q := NewSerialQueue(8)
	defer q.Stop()

	var (
		mu      sync.Mutex
		running int
		maxSeen int
		wg      sync.WaitGroup
	)
	for p := 0; p < 8; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				q.Post(func() {
					mu.Lock()
					running++
					if running > maxSeen {
						maxSeen = running
					}
					mu.Unlock()

					mu.Lock()
					running--
					mu.Unlock()
				})
			}
		}()
	}
	wg.Wait()
	q.Sync()

	assert.Equal(t, 1, maxSeen)
}

func TestSerialQueueSurvivesFailingTasks(t *testing.T) {
	q := NewSerialQueue(1)
	defer q.Stop()

	ran := false
	q.Post(func() { panic("listener blew up") })
	q.enqueue(funcRunner{run: func() error { return errors.New("failed") }})
	q.Post(func() { ran = true })
	q.Sync()

	assert.True(t, ran)
}

func TestSerialQueueStop(t *testing.T) {
	q := NewSerialQueue(1)
	q.Stop()

	assert.False(t, q.Post(func() {}))
	assert.NotPanics(t, q.Stop)
	assert.NotPanics(t, q.Sync)
}

func TestSerialQueueStopDiscardsPending(t *testing.T) {
	q := NewSerialQueue(0)
	release := make(chan struct{})
	ran := false

	q.Post(func() { <-release })
	q.Post(func() { ran = true })
	go func() {
		time.Sleep(10 * time.Millisecond)
		close(release)
	}()
	q.Stop()

	assert.False(t, ran)
}

func TestSerialQueueReentrantPost(t *testing.T) {
	for _, capacity := range []int{0, 1, 64} {
		q := NewSerialQueue(capacity)

		var got []int
		finished := make(chan struct{})
		var post func(i int)
		post = func(i int) {
			got = append(got, i)
			if i == 200 {
				close(finished)
				return
			}
			assert.True(t, q.Post(func() { post(i + 1) }))
		}
		q.Post(func() { post(0) })

		select {
		case <-finished:
		case <-time.After(time.Second):
			t.Fatalf("capacity %d: tasks posted from the queue goroutine blocked", capacity)
		}

		assert.Len(t, got, 201, "capacity %d", capacity)
		q.Stop()
	}
}

func TestSerialQueuePostDoesNotBlockWhileBusy(t *testing.T) {
	q := NewSerialQueue(0)
	defer q.Stop()

	release := make(chan struct{})
	q.Post(func() { <-release })

	posted := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			q.Post(func() {})
		}
		close(posted)
	}()

	select {
	case <-posted:
	case <-time.After(time.Second):
		t.Fatal("post blocked while a task was running")
	}
	close(release)
	q.Sync()
}
