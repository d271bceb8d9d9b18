package id_test

import (
	"fmt"

	"github.com/slugkit/slugkit-generator/id"
)

func ExampleNew() {
	fmt.Println(id.New())
}

func ExampleRandom() {
	size := 34
	s := id.Random(size)
	if len(s) != size {
		panic("mismatched sizes")
	}
	fmt.Println(s)
}

func ExampleRandomSeed() {
	seed := id.RandomSeed()
	if len(seed) != 8 {
		panic("mismatched size")
	}
	fmt.Println(seed)
}
