package bench_test

import (
	"fmt"

	"github.com/cwbudde/algo-grid2d/bench"
	"github.com/cwbudde/algo-grid2d/grid/filter"
)

func ExampleRun() {
	cfg := bench.ApplyOptions(
		bench.WithImageSide(4),
		bench.WithKernelSide(2),
	)

	result, _ := bench.Run(cfg)

	fmt.Println(result.Output.Describe("output"))

	// Output:
	// output:
	//   3 x 3
	//   [6, ... , 22]
}

func ExampleRun_extrapolated() {
	cfg := bench.ApplyOptions(
		bench.WithImageSide(4),
		bench.WithKernelSide(2),
		bench.WithMode(bench.Extrapolated{Policy: filter.Constant}),
	)

	result, _ := bench.Run(cfg)

	// Boundary extrapolation keeps the input shape
	fmt.Printf("%d x %d\n", result.Output.Cols(), result.Output.Rows())

	// Output:
	// 4 x 4
}
