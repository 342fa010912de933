package efp_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/SebastianMacaluso/EnergyFlow/core"
	"github.com/SebastianMacaluso/EnergyFlow/efp"
)

// ExampleEFP_ComputeFrom evaluates the two-point correlator on explicit
// coordinates: two particles sharing the energy evenly, separated by an
// angular weight of 2. The closed form is 2·z1·z2·θ12 = 1.
func ExampleEFP_ComputeFrom() {
	obs, err := efp.New(efp.Graph{{0, 1}}, core.Params{})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	zs := []float64{0.5, 0.5}
	thetas := mat.NewSymDense(2, nil)
	thetas.SetSym(0, 1, 2)

	val, err := obs.ComputeFrom(zs, thetas)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("EFP = %.2f\n", val)
	// Output:
	// EFP = 1.00
}
