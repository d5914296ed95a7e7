// Package collections provides a FIFO queue and a LIFO stack.
package collections

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned when removing or peeking at an empty collection.
var ErrEmpty = errors.New("collection is empty")

// Queue is a first-in first-out collection.
type Queue[T any] struct {
	items []T
}

func (q *Queue[T]) Enqueue(v T) {
	q.items = append(q.items, v)
}

func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if len(q.items) == 0 {
		return zero, fmt.Errorf("dequeue: %w", ErrEmpty)
	}
	v := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]
	return v, nil
}

func (q *Queue[T]) Peek() (T, error) {
	if len(q.items) == 0 {
		var zero T
		return zero, fmt.Errorf("peek: %w", ErrEmpty)
	}
	return q.items[0], nil
}

func (q *Queue[T]) IsEmpty() bool { return len(q.items) == 0 }
func (q *Queue[T]) Len() int      { return len(q.items) }

func (q *Queue[T]) String() string {
	return fmt.Sprintf("Queue(%v)", q.items)
}

// Stack is a last-in first-out collection.
type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

func (s *Stack[T]) Pop() (T, error) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, fmt.Errorf("pop: %w", ErrEmpty)
	}
	v := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return v, nil
}

func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, fmt.Errorf("peek: %w", ErrEmpty)
	}
	return s.items[len(s.items)-1], nil
}

func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }
func (s *Stack[T]) Len() int      { return len(s.items) }

func (s *Stack[T]) String() string {
	return fmt.Sprintf("Stack(%v)", s.items)
}
