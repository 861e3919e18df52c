package worker

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPool(t *testing.T) {
	p := NewPool(context.Background(), 3)
	var mu sync.Mutex
	count := 0
	for i := 0; i < 5; i++ {
		p.Submit(func(context.Context) error {
			mu.Lock()
			count++
			mu.Unlock()
			return nil
		})
	}
	p.Submit(nil)
	require.NoError(t, p.Wait())
	require.Equal(t, 5, count)
	// 重複呼叫 Wait 不會 panic
	require.NoError(t, p.Wait())
}

func TestPoolCollectsErrors(t *testing.T) {
	p := NewPool(context.Background(), 0)
	e1, e2 := errors.New("one"), errors.New("two")
	p.Submit(func(context.Context) error { return e1 })
	p.Submit(func(context.Context) error { return nil })
	p.Submit(func(context.Context) error { return e2 })
	err := p.Wait()
	require.ErrorIs(t, err, e1)
	require.ErrorIs(t, err, e2)
}

func TestPoolCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewPool(ctx, 2)
	ran := false
	p.Submit(func(context.Context) error { ran = true; return nil })
	require.ErrorIs(t, p.Wait(), context.Canceled)
	require.False(t, ran)
}
