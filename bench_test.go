package listor_test

import (
	"container/list"
	"testing"

	"github.com/ef-ds/deque"

	"github.com/onflow/listor"
)

// BenchmarkPushBack measures slab-backed appends against the pointer-linked
// stdlib list and a slice-backed deque.
func BenchmarkPushBack(b *testing.B) {
	b.Run("listor", func(b *testing.B) {
		l := listor.New[int]()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.PushBack(i)
		}
	})

	b.Run("listor-prealloc", func(b *testing.B) {
		l := listor.NewWithCapacity[int](b.N)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.PushBack(i)
		}
	})

	b.Run("container-list", func(b *testing.B) {
		l := list.New()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.PushBack(i)
		}
	})

	b.Run("efds-deque", func(b *testing.B) {
		var d deque.Deque
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			d.PushBack(i)
		}
	})
}

// BenchmarkChurn measures steady-state remove-then-insert cycles, the
// workload the embedded free stack exists for.
func BenchmarkChurn(b *testing.B) {
	const resident = 1024

	b.Run("listor", func(b *testing.B) {
		l := listor.New[int]()
		handles := make([]listor.Index, resident)
		for i := 0; i < resident; i++ {
			handles[i], _ = l.PushBack(i)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			pos := i % resident
			l.Remove(handles[pos])
			handles[pos], _ = l.PushBack(i)
		}
	})

	b.Run("container-list", func(b *testing.B) {
		l := list.New()
		handles := make([]*list.Element, resident)
		for i := 0; i < resident; i++ {
			handles[i] = l.PushBack(i)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			pos := i % resident
			l.Remove(handles[pos])
			handles[pos] = l.PushBack(i)
		}
	})
}

// BenchmarkPopFront measures FIFO drain throughput.
func BenchmarkPopFront(b *testing.B) {
	b.Run("listor", func(b *testing.B) {
		l := listor.NewWithCapacity[int](b.N)
		for i := 0; i < b.N; i++ {
			l.PushBack(i)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.PopFront()
		}
	})

	b.Run("efds-deque", func(b *testing.B) {
		var d deque.Deque
		for i := 0; i < b.N; i++ {
			d.PushBack(i)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			d.PopFront()
		}
	})
}
