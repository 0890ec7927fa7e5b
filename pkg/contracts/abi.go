package contracts

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var (
	//go:embed abi/EtherSwap.json
	etherSwapJSON string
	//go:embed abi/ERC20Swap.json
	erc20SwapJSON string
	//go:embed abi/ERC20.json
	erc20JSON string
)

// Interface descriptors of the contracts Boltz binds. Each is parsed once.
var (
	EtherSwapABI = parseOnce("EtherSwap", etherSwapJSON)
	ERC20SwapABI = parseOnce("ERC20Swap", erc20SwapJSON)
	ERC20ABI     = parseOnce("ERC20", erc20JSON)
)

func parseOnce(name, definition string) func() (*abi.ABI, error) {
	return sync.OnceValues(func() (*abi.ABI, error) {
		parsed, err := abi.JSON(strings.NewReader(definition))
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s ABI: %w", name, err)
		}
		return &parsed, nil
	})
}
