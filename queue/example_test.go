package queue

import (
	"fmt"
)

func ExampleNew() {
	var (
		q    = New[string]()
		done = make(chan struct{})
	)

	go func() {
		defer close(done)
		for i := 0; i < 3; i++ {
			v, _ := q.Pop()
			fmt.Println(v)
		}
	}()

	q.Push("first")
	q.Push("second")
	q.Push("third")
	<-done

	// Output:
	// first
	// second
	// third
}

func ExampleNewCloseable() {
	cq := NewCloseable[int]()
	cq.Push(1)
	cq.Close()

	v, err := cq.Pop()
	fmt.Println(v, err)

	_, err = cq.Pop()
	fmt.Println(err)

	// Output:
	// 1 <nil>
	// the queue has been closed
}
