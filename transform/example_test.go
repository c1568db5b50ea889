package transform_test

import (
	"fmt"

	"github.com/katalvlaran/stralign/transform"
)

// ExampleTransform reproduces the classic worked example: transforming
// "ACAAGC" into "CCGT" with rewarded copies costs 4, and replaying the
// extracted script reproduces the target exactly.
func ExampleTransform() {
	costs := transform.Costs{Copy: -1, Replace: 1, Delete: 2, Insert: 2}

	table, script, z, err := transform.Transform("ACAAGC", "CCGT", costs)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("cost:", table.Cost())
	fmt.Println("script:", script)
	fmt.Println("result:", z)
	// Output:
	// cost: 4
	// script: [---:- del:A cpy:C del:A rep:C cpy:G rep:T]
	// result: CCGT
}

// ExampleApply shows replaying a hand-written script: operations run
// earliest edit first, with a cursor consuming the source string.
func ExampleApply() {
	script := []transform.Operation{
		{Kind: transform.NoOp, Char: transform.NoOpChar},
		{Kind: transform.Copy, Char: 'G'},
		{Kind: transform.Replace, Char: 'O'},
		{Kind: transform.Insert, Char: '!'},
	}

	fmt.Println(transform.Apply("GA", script))
	// Output:
	// GO!
}
