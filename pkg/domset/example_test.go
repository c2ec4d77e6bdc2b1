package domset_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/domsearch/pkg/domset"
	"github.com/matzehuels/domsearch/pkg/graph"
)

func Example() {
	// A star: every leaf is dominated by the center.
	g := graph.Star(5)

	s, err := domset.New(g, domset.Options{Seed: 1, MaxRounds: 10})
	if err != nil {
		panic(err)
	}
	res, err := s.Run(context.Background())
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Size, res.Vertices)
	// Output: 1 [0]
}

func ExampleReduce() {
	// 0-1-2: the endpoints are covered by the middle vertex.
	g := graph.Path(3)
	fmt.Println(domset.Reduce(g))
	// Output: [false true false]
}

func ExampleVerify() {
	g := graph.Path(4) // 0-1-2-3
	fmt.Println(domset.Verify(g, []int32{1, 2}))
	fmt.Println(domset.Verify(g, []int32{1}))
	// Output:
	// <nil>
	// INVARIANT_VIOLATION: verification failed: vertex 3 is not dominated by the 1-vertex solution
}

func ExampleStopper() {
	s, err := domset.New(graph.Cycle(6), domset.Options{})
	if err != nil {
		panic(err)
	}
	// Stopping before Run returns the reduced starting set unchanged.
	s.Stopper().Stop()
	res, err := s.Run(context.Background())
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Size, res.Stats.Rounds)
	// Output: 6 0
}
