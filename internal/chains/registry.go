package chains

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/common"
)

var ErrUnsupportedChain error = errors.New("unsupported chain")
var ErrMissingRPCEndpoint error = errors.New("chain config is missing an RPC endpoint")
var ErrMissingUSDCAddress error = errors.New("chain config is missing the USDC contract address")

// ChainConfig describes one supported chain. Addresses are parsed once so all
// downstream comparisons are byte comparisons, never case-sensitive text.
type ChainConfig struct {
	ID          int64
	Name        string
	RPCEndpoint string
	USDCAddress common.Address
	CCTPAddress common.Address
}

// the six mainnets the tracker watches, with Circle's USDC contract and the
// CCTP TokenMessenger per chain
var defaultChains = []ChainConfig{
	{
		ID:          1,
		Name:        "Ethereum",
		RPCEndpoint: "https://eth.llamarpc.com",
		USDCAddress: common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"),
		CCTPAddress: common.HexToAddress("0xBd3fa81B58ba92a82136038B25aDec7066e1C60a"),
	},
	{
		ID:          10,
		Name:        "Optimism",
		RPCEndpoint: "https://optimism.llamarpc.com",
		USDCAddress: common.HexToAddress("0x0b2C639c533813f4Aa9D7837CAf62653d097Ff85"),
		CCTPAddress: common.HexToAddress("0x2B4069517957735bE00ceE0fadAE88a26365528F"),
	},
	{
		ID:          137,
		Name:        "Polygon",
		RPCEndpoint: "https://polygon.llamarpc.com",
		USDCAddress: common.HexToAddress("0x2791Bca1f2de4661ED88A928da36B3fF2D7f7D23"),
		CCTPAddress: common.HexToAddress("0x9f3B8679c73C2Fef8b59f54c9A711e3812ee217D"),
	},
	{
		ID:          8453,
		Name:        "Base",
		RPCEndpoint: "https://base.llamarpc.com",
		USDCAddress: common.HexToAddress("0x833589fCD6eDb6E08f4c7C32D4f71b1566dA3C95"),
		CCTPAddress: common.HexToAddress("0x1682Ae6375C4E4A97e4B583BC394c861A46D8962"),
	},
	{
		ID:          42161,
		Name:        "Arbitrum",
		RPCEndpoint: "https://arbitrum.llamarpc.com",
		USDCAddress: common.HexToAddress("0xAF88d065e77c8cC2239327C5EDb3A432268e5831"),
		CCTPAddress: common.HexToAddress("0x19330d10B9afb16F576Ddf19cbFb1B79daC60AAe"),
	},
	{
		ID:          43114,
		Name:        "Avalanche",
		RPCEndpoint: "https://avalanche.llamarpc.com",
		USDCAddress: common.HexToAddress("0xB97EF9Ef8734C71904D8002F8b6Bc66Dd9c48a6E"),
		CCTPAddress: common.HexToAddress("0x6B25532e1060CE10cc3B0A99e5683b91BFDe6982"),
	},
}

// Registry is the static table of supported chains, fixed at process start.
type Registry struct {
	byID  map[int64]ChainConfig
	order []int64
}

// NewRegistry builds the registry from the built-in chain table, applying any
// RPC endpoint overrides keyed by chain id. Every entry is validated.
func NewRegistry(rpcOverrides map[int64]string) (*Registry, error) {
	return newRegistry(defaultChains, rpcOverrides)
}

func newRegistry(configs []ChainConfig, rpcOverrides map[int64]string) (*Registry, error) {
	byID := make(map[int64]ChainConfig, len(configs))
	order := make([]int64, 0, len(configs))

	for _, chain := range configs {
		if override, ok := rpcOverrides[chain.ID]; ok {
			chain.RPCEndpoint = override
		}

		if chain.RPCEndpoint == "" {
			return nil, fmt.Errorf("%w: chain %d (%s)", ErrMissingRPCEndpoint, chain.ID, chain.Name)
		}
		if chain.USDCAddress == (common.Address{}) {
			return nil, fmt.Errorf("%w: chain %d (%s)", ErrMissingUSDCAddress, chain.ID, chain.Name)
		}

		byID[chain.ID] = chain
		order = append(order, chain.ID)
	}

	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	return &Registry{
		byID:  byID,
		order: order,
	}, nil
}

// List returns all supported chains ordered by chain id.
func (r *Registry) List() []ChainConfig {
	configs := make([]ChainConfig, 0, len(r.order))
	for _, id := range r.order {
		configs = append(configs, r.byID[id])
	}
	return configs
}

// ByID resolves a chain by its id.
func (r *Registry) ByID(chainID int64) (ChainConfig, error) {
	chain, ok := r.byID[chainID]
	if !ok {
		return ChainConfig{}, fmt.Errorf("%w: %d", ErrUnsupportedChain, chainID)
	}
	return chain, nil
}
