package view_test

import (
	"errors"
	"fmt"

	"github.com/hasbyte1/go-view-query/view"
)

func ExampleOf() {
	data := []int{3, 1, 4, 1, 5}
	v := view.Of(data)

	fmt.Println(v.Len(), v.At(0), v.At(4))
	// Output: 5 3 5
}

func ExampleView_Slice() {
	v := view.Of([]string{"a", "b", "c", "d"})
	mid := v.Slice(1, 3)

	fmt.Println(mid.Len(), mid.At(0), mid.At(1))
	// Output: 2 b c
}

func ExampleScoped() {
	var escaped view.View[int]

	view.Scoped([]int{1, 2, 3}, func(v view.View[int]) {
		fmt.Println("inside:", v.Len())
		escaped = v // breaking the contract on purpose
	})

	defer func() {
		if err, ok := recover().(error); ok && errors.Is(err, view.ErrOutOfScope) {
			fmt.Println("outside: out of scope")
		}
	}()
	escaped.At(0)
	// Output:
	// inside: 3
	// outside: out of scope
}
