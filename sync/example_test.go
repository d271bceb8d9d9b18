package sync_test

import (
	"context"
	"fmt"

	"github.com/slugkit/slugkit-generator/sync"
)

// ExampleGo illustrates using Go in place of a sync.WaitGroup to simplify
// goroutine counting and error handling, bounding the concurrency to 2
// in-flight calls at a time.
func ExampleGo() {
	names := []string{"mountain-river", "silver-fox", "quiet-storm"}

	funcs := []func() error{}
	for _, name := range names {
		name := name // https://golang.org/doc/faq#closures_and_goroutines
		funcs = append(
			funcs,
			func() error {
				fmt.Println("checked:", name)
				return nil
			},
		)
	}

	err := sync.Go(context.Background(), 2, funcs...)
	fmt.Println("err:", err)

	// Unordered output:
	// checked: mountain-river
	// checked: silver-fox
	// checked: quiet-storm
	// err: <nil>
}
