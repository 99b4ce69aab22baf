package ctnum_test

import (
	"fmt"

	ctnum "github.com/shabbyrobe/go-ctnum"
)

func ExampleQuoRem() {
	x := ctnum.NewInt(-7)
	y := ctnum.NewInt(2)
	q, r, err := ctnum.QuoRem(x, y)
	fmt.Println(q, r, err)
	// Output: -3 -1 <nil>
}

func ExampleDivMod() {
	x := ctnum.NewInt(-7)
	y := ctnum.NewInt(2)
	q, m, err := ctnum.DivMod(x, y)
	fmt.Println(q, m, err)
	// Output: -4 1 <nil>
}

func ExampleQuoRemTrace() {
	x, _ := ctnum.IntFromString("0x1000000000000000000000000", 0)
	y := ctnum.NewInt(3)

	var tr ctnum.DivTrace
	q, r, _ := ctnum.QuoRemTrace(x, y, &tr)
	fmt.Println(q, r)
	fmt.Println(tr.Checks == 2*(tr.N-tr.T))
	// Output:
	// 26409387504754779197847983445 1
	// true
}

func ExampleInt_Mod() {
	x := ctnum.NewInt(-7)
	m, _ := x.Mod(ctnum.NewInt(-2))
	fmt.Println(m)
	// Output: 1
}
