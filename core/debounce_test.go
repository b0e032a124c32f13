package core

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Debouncer_coalesces(t *testing.T) {
	var fired int32
	d := NewDebouncer(20*time.Millisecond, func() { atomic.AddInt32(&fired, 1) })

	for i := 0; i < 5; i++ {
		d.Call()
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&fired))
}

func Test_Debouncer_Stop(t *testing.T) {
	var fired int32
	d := NewDebouncer(10*time.Millisecond, func() { atomic.AddInt32(&fired, 1) })

	d.Call()
	d.Stop()

	time.Sleep(40 * time.Millisecond)
	assert.Zero(t, atomic.LoadInt32(&fired))

	// stopped debouncers ignore further calls
	d.Call()
	time.Sleep(40 * time.Millisecond)
	assert.Zero(t, atomic.LoadInt32(&fired))
}
