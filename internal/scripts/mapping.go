package scripts

import (
	"context"
	"fmt"
	"io"
	"math/big"
)

// SetMapping deploys Mapping and shows get/set/get against the deployer's address
func SetMapping() *Script {
	return &Script{
		Name:        "set-mapping",
		Description: "Deploy Mapping, then get(deployer), set(deployer, 3), get(deployer)",
		Contracts:   []string{"Mapping"},
		Run:         runSetMapping,
	}
}

func runSetMapping(ctx context.Context, h Harness, out io.Writer) error {
	contract, err := h.Deploy(ctx, "Mapping")
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Mapping Contract deployed to: %s\n", contract.Address.Hex())

	deployer := h.Deployer().Hex()
	value := big.NewInt(3)

	fmt.Fprintf(out, "Calling get(%s) before set(%s, %s)...\n", deployer, deployer, value)
	res, err := h.Invoke(ctx, contract, "get", h.Deployer())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "get(%s) output before set: %v\n", deployer, res.Value())

	fmt.Fprintf(out, "\nCalling set(%s, %s)...\n", deployer, value)
	if _, err := h.Invoke(ctx, contract, "set", h.Deployer(), value); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nCalling get(%s) after set(%s, %s)...\n", deployer, deployer, value)
	res, err = h.Invoke(ctx, contract, "get", h.Deployer())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "get(%s) output after set(%s, %s): %v\n", deployer, deployer, value, res.Value())

	return nil
}
