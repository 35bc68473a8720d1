package utils

import (
	"log/slog"
	"sync"
)

const DEFAULT_BATCH_SIZE = 25

// BatchBuffer accumulates items until a fixed batch size is reached.
type BatchBuffer[T any] struct {
	buffer     []T
	size       int
	bufferLock sync.Mutex
}

func NewBatchBuffer[T any](size int) *BatchBuffer[T] {
	if size < 1 {
		size = DEFAULT_BATCH_SIZE
	}
	return &BatchBuffer[T]{
		buffer: make([]T, 0, size),
		size:   size,
	}
}

// Add appends item and reports whether the buffer is now full.
func (b *BatchBuffer[T]) Add(item T) bool {
	b.bufferLock.Lock()
	defer b.bufferLock.Unlock()

	b.buffer = append(b.buffer, item)
	return len(b.buffer) >= b.size
}

func (b *BatchBuffer[T]) GetAndClear() []T {
	b.bufferLock.Lock()
	defer b.bufferLock.Unlock()

	if len(b.buffer) == 0 {
		return nil
	}

	batch := b.buffer
	b.buffer = make([]T, 0, b.size)
	return batch
}

func (b *BatchBuffer[T]) Size() int {
	b.bufferLock.Lock()
	defer b.bufferLock.Unlock()
	return len(b.buffer)
}

func (b *BatchBuffer[T]) HasData() bool {
	b.bufferLock.Lock()
	defer b.bufferLock.Unlock()
	return len(b.buffer) > 0
}

// Chunk feeds items through a buffer of the given size and calls flush for
// every full batch plus the remainder. It stops at the first flush error.
func Chunk[T any](items []T, size int, batchType string, flush func([]T) error) error {
	buf := NewBatchBuffer[T](size)
	for _, item := range items {
		if !buf.Add(item) {
			continue
		}
		if err := flushBatch(buf, batchType, flush); err != nil {
			return err
		}
	}
	if buf.HasData() {
		return flushBatch(buf, batchType, flush)
	}
	return nil
}

func flushBatch[T any](buf *BatchBuffer[T], batchType string, flush func([]T) error) error {
	batch := buf.GetAndClear()
	slog.Debug("[BatchBuffer] Processing batch",
		slog.String("type", batchType),
		slog.Int("batch_size", len(batch)))
	return flush(batch)
}
