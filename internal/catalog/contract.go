package catalog

import "fmt"

// Contract selects how misses are answered.
type Contract string

const (
	// ContractStrict filters by category and reports unknown ids as ErrNotFound.
	ContractStrict Contract = "strict"
	// ContractLegacy ignores the category filter and falls back to the
	// first product when an id is unknown.
	ContractLegacy Contract = "legacy"
)

func ParseContract(s string) (Contract, error) {
	switch c := Contract(s); c {
	case ContractStrict, ContractLegacy:
		return c, nil
	case "":
		return ContractStrict, nil
	default:
		return "", fmt.Errorf("unknown catalog contract %q", s)
	}
}
