package braid_test

import (
	"fmt"

	"github.com/Cornell-QCA/tqc-emu/anyon"
	"github.com/Cornell-QCA/tqc-emu/braid"
	"github.com/Cornell-QCA/tqc-emu/state"
)

// Six Sigma anyons fused as a chain encode three qubits; exchanging the
// first pair acts on qubit 0 with the R-matrix.
func Example() {
	st := state.New()
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		st.AddAnyon(anyon.New(name, anyon.Sigma, anyon.Position{}))
	}
	for i := 1; i < 6; i++ {
		if err := st.AddFusionOp(uint32(i), 0, i); err != nil {
			fmt.Println(err)
			return
		}
	}

	e, err := braid.New(st)
	if err != nil {
		fmt.Println(err)
		return
	}
	if err = e.Swap([]braid.Swap{{A: 0, B: 1}}); err != nil {
		fmt.Println(err)
		return
	}

	enc, _ := e.Fusion().QubitEncoding()
	q, ok, _ := e.SwapToQubit(1, 0)
	u, _ := e.Unitary(1, 0)
	fmt.Println("encoding:", enc)
	fmt.Println("qubit:", q, ok)
	fmt.Printf("unitary: %dx%d\n", u.Rows(), u.Cols())
	fmt.Println(e)

	// Output:
	// encoding: [(0 1) (0 3) (0 5)]
	// qubit: 0 true
	// unitary: 8x8
	// | | | | | |
	// \ / | | | |
	//  X  | | | |
	// / \ | | | |
	// | | | | | |
}

func ExampleEngine_Swap_rejected() {
	st := state.New()
	for _, name := range []string{"a", "b", "c"} {
		st.AddAnyon(anyon.New(name, anyon.Sigma, anyon.Position{}))
	}
	e, _ := braid.New(st)

	err := e.Swap([]braid.Swap{{A: 0, B: 1}, {A: 1, B: 2}})
	fmt.Println(err)
	fmt.Println("steps:", e.Time())

	// Output:
	// Swap: braid: braiding error: (1 2): index 1: braid: index already swapped in this step
	// steps: 0
}
