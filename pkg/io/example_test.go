package io_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/matzehuels/domsearch/pkg/io"
)

func ExampleReadGraph() {
	input := `c a path on four vertices
p ds 4 3
1 2
2 3
3 4
`
	g, err := io.ReadGraph(strings.NewReader(input))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(g.N(), g.M(), g.Neighbors(1))
	// Output: 4 3 [0 2]
}

func ExampleWriteSolution() {
	if err := io.WriteSolution(os.Stdout, []int32{1, 2}); err != nil {
		fmt.Println("Error:", err)
	}
	// Output:
	// 2
	// 2
	// 3
}
