package scripts

import (
	"context"
	"fmt"
	"io"
	"math/big"
)

// FooIfElse deploys IfElse and calls foo once per branch of its threshold logic
func FooIfElse() *Script {
	return &Script{
		Name:        "foo-ifelse",
		Description: "Deploy IfElse and call foo(5), foo(11), foo(30)",
		Contracts:   []string{"IfElse"},
		Run:         runFooIfElse,
	}
}

var fooInputs = []struct {
	x      int64
	branch string
}{
	{5, "input < 10"},
	{11, "input > 10 and < 20"},
	{30, "input > 20"},
}

func runFooIfElse(ctx context.Context, h Harness, out io.Writer) error {
	contract, err := h.Deploy(ctx, "IfElse")
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "IfElse Contract deployed to: %s\n", contract.Address.Hex())

	for i, in := range fooInputs {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "Calling foo(%d)\n", in.x)

		res, err := h.Invoke(ctx, contract, "foo", big.NewInt(in.x))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "foo(%d) output (%s): %v\n", in.x, in.branch, res.Value())
	}

	return nil
}
