package bezier_test

import (
	"fmt"
	"strings"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/bezier"
)

func ExampleEvalMatrix() {
	ctrl := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 3, Y: 3}}

	p := bezier.EvalParametric(ctrl, 0.5)
	q := bezier.EvalMatrix(ctrl, 0.5)
	fmt.Printf("parametric: (%.2f, %.2f)\n", p.X, p.Y)
	fmt.Printf("matrix:     (%.2f, %.2f)\n", q.X, q.Y)
	// Output:
	// parametric: (1.25, 1.75)
	// matrix:     (1.25, 1.75)
}

func ExampleNewBasis() {
	m := bezier.NewBasis(3)
	fmt.Println(strings.ReplaceAll(m.String(), "\t", " "))
	// Output:
	// -1.00 3.00 -3.00 1.00
	// 3.00 -6.00 3.00 0.00
	// -3.00 3.00 0.00 0.00
	// 1.00 0.00 0.00 0.00
}

func ExampleSample() {
	ctrl := []vec.Vec2{{X: 0, Y: 0}, {X: 2, Y: 4}, {X: 4, Y: 0}}
	for _, p := range bezier.Sample(ctrl, 4, bezier.Matrix, 0, 1) {
		fmt.Printf("%.2f %.2f\n", p.X, p.Y)
	}
	// Output:
	// 0.00 0.00
	// 1.00 1.50
	// 2.00 2.00
	// 3.00 1.50
	// 4.00 0.00
}
