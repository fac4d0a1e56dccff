package sparse_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlath-sparse/sparse"
)

// ExampleMatrix_Insert shows point updates and the dense print.
func ExampleMatrix_Insert() {
	m, _ := sparse.New(2, 3)
	_ = m.Insert(1, 3, 4.5)
	_ = m.Insert(2, 1, -1)
	_ = m.Insert(1, 3, 2) // overwrite
	fmt.Print(m)
	fmt.Println("non-zero:", m.Len())
	// Output:
	// [0, 0, 2]
	// [-1, 0, 0]
	// non-zero: 2
}

// ExampleMatrix_Remove shows that Remove sweeps the whole matrix by value.
func ExampleMatrix_Remove() {
	m, _ := sparse.New(2, 2)
	_ = m.Insert(1, 1, 7)
	_ = m.Insert(2, 2, 7)
	_ = m.Insert(2, 1, 3)
	n, _ := m.Remove(1, 2, 7)
	fmt.Println("removed:", n)
	fmt.Print(m)
	// Output:
	// removed: 2
	// [0, 0]
	// [3, 0]
}

// ExampleMultiply multiplies by the identity.
func ExampleMultiply() {
	a, _ := sparse.New(2, 2)
	_ = a.Insert(1, 1, 1)
	_ = a.Insert(1, 2, 2)
	_ = a.Insert(2, 1, 3)
	_ = a.Insert(2, 2, 4)
	id, _ := sparse.New(2, 2)
	_ = id.Insert(1, 1, 1)
	_ = id.Insert(2, 2, 1)

	c, _ := sparse.Multiply(a, id)
	fmt.Print(c)
	// Output:
	// [1, 2]
	// [3, 4]
}

// ExampleSum shows the overwrite semantics: B's cell replaces A's.
func ExampleSum() {
	a, _ := sparse.New(1, 2)
	_ = a.Insert(1, 1, 1)
	_ = a.Insert(1, 2, 2)
	b, _ := sparse.New(1, 2)
	_ = b.Insert(1, 2, 5)

	s, _ := sparse.Sum(a, b)
	sum, _ := sparse.Add(a, b)
	fmt.Print("Sum: ", s)
	fmt.Print("Add: ", sum)
	// Output:
	// Sum: [1, 5]
	// Add: [1, 7]
}

// ExampleMatrix_Get shows the error surface for bad coordinates.
func ExampleMatrix_Get() {
	m, _ := sparse.New(3, 3)
	_, err := m.Get(4, 1)
	fmt.Println(errors.Is(err, sparse.ErrIndexOutOfBounds))
	fmt.Println(err)
	// Output:
	// true
	// Sparse.Get(4,1): sparse: index out of range
}
