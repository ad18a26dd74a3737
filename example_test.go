package deque_test

import (
	"fmt"

	"github.com/wrapbuffer/deque"
)

func ExampleFromSlice() {
	d := deque.FromSlice([]int{1, 2, 3, 4, 5})
	fmt.Println(d.Len(), d.Cap())
	fmt.Println(d)
	// Output:
	// 5 5
	// 1 2 3 4 5
}

func ExampleDeque_PushFront() {
	d := deque.New[string]()
	d.PushBack("world")
	d.PushFront("hello")
	fmt.Println(d)
	// Output: hello world
}

func ExampleDeque_PopFront() {
	d := deque.FromSlice([]int{1, 2, 3})
	fmt.Println(d.PopFront())
	fmt.Println(d.PopFront())
	fmt.Println(d)
	// Output:
	// 1
	// 2
	// 3
}

func ExampleDeque_PopBack_empty() {
	d := deque.New[int]()
	// An empty pop returns the zero value; check Empty to tell the
	// difference from a stored zero.
	fmt.Println(d.PopBack(), d.Empty())
	// Output: 0 true
}

func ExampleDeque_Reverse() {
	d := deque.FromSlice([]int{1, 2, 3, 4, 5})
	fmt.Println(d.Reverse())
	// Output: 5 4 3 2 1
}

func ExampleDeque_Flip() {
	d := deque.FromSlice([]int{5, 4, 3, 2, 1})
	fmt.Println(d.Flip())
	fmt.Println(d)
	// Output:
	// 1 2 3 4 5
	// 5 4 3 2 1
}

func ExampleDeque_Concat() {
	a := deque.FromSlice([]int{1, 2, 3})
	b := deque.FromSlice([]int{4, 5})
	fmt.Println(a.Concat(b))
	// Output: 1 2 3 4 5
}
