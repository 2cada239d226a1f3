package chain

import (
	"context"
	"math/big"
	"strings"

	"tokengate/internal/domain/token"
	"tokengate/internal/pkg/errs"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

var errEmptyEndpoint = errs.New("rpc endpoint required")

// ContractCaller is the subset of the JSON-RPC client used by EVMProvider.
// *ethclient.Client satisfies it.
type ContractCaller interface {
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

// Provider answers ERC-20 reads for one chain.
type Provider interface {
	ChainID() int64
	BalanceOf(ctx context.Context, contract, holder common.Address) (*big.Int, error)
	Decimals(ctx context.Context, contract common.Address) (uint8, error)
	TokenInfo(ctx context.Context, contract common.Address) (token.Info, error)
	// RemoteChainID asks the endpoint which chain it serves.
	RemoteChainID(ctx context.Context) (int64, error)
	Close()
}

type EVMProvider struct {
	chainID int64
	caller  ContractCaller
	close   func()
}

func NewEVMProvider(chainID int64, caller ContractCaller) *EVMProvider {
	return &EVMProvider{chainID: chainID, caller: caller, close: func() {}}
}

// DialEVMProvider connects to an HTTP or WebSocket JSON-RPC endpoint.
func DialEVMProvider(chainID int64, endpoint string) (*EVMProvider, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		return nil, errEmptyEndpoint
	}
	client, err := ethclient.Dial(trimmed)
	if err != nil {
		return nil, errs.Wrap(err, "failed to dial rpc endpoint")
	}
	return &EVMProvider{chainID: chainID, caller: client, close: client.Close}, nil
}

func (p *EVMProvider) ChainID() int64 {
	return p.chainID
}

func (p *EVMProvider) Close() {
	p.close()
}

func (p *EVMProvider) BalanceOf(ctx context.Context, contract, holder common.Address) (*big.Int, error) {
	out, err := p.call(ctx, contract, methodBalanceOf, holder)
	if err != nil {
		return nil, err
	}
	balance, ok := out[0].(*big.Int)
	if !ok {
		return nil, errs.New("unexpected balanceOf output type")
	}
	return balance, nil
}

func (p *EVMProvider) Decimals(ctx context.Context, contract common.Address) (uint8, error) {
	out, err := p.call(ctx, contract, methodDecimals)
	if err != nil {
		return 0, err
	}
	decimals, ok := out[0].(uint8)
	if !ok {
		return 0, errs.New("unexpected decimals output type")
	}
	return decimals, nil
}

func (p *EVMProvider) TokenInfo(ctx context.Context, contract common.Address) (token.Info, error) {
	name, err := p.callString(ctx, contract, methodName)
	if err != nil {
		return token.Info{}, err
	}
	symbol, err := p.callString(ctx, contract, methodSymbol)
	if err != nil {
		return token.Info{}, err
	}
	decimals, err := p.Decimals(ctx, contract)
	if err != nil {
		return token.Info{}, err
	}
	return token.Info{Name: name, Symbol: symbol, Decimals: decimals}, nil
}

func (p *EVMProvider) RemoteChainID(ctx context.Context) (int64, error) {
	id, err := p.caller.ChainID(ctx)
	if err != nil {
		return 0, errs.Wrap(err, "eth_chainId failed")
	}
	if !id.IsInt64() {
		return 0, errs.New("chain id out of range")
	}
	return id.Int64(), nil
}

func (p *EVMProvider) callString(ctx context.Context, contract common.Address, method string) (string, error) {
	out, err := p.call(ctx, contract, method)
	if err != nil {
		return "", err
	}
	s, ok := out[0].(string)
	if !ok {
		return "", errs.New("unexpected " + method + " output type")
	}
	return s, nil
}

func (p *EVMProvider) call(ctx context.Context, contract common.Address, method string, args ...any) ([]any, error) {
	input, err := erc20ABI.Pack(method, args...)
	if err != nil {
		return nil, errs.Wrap(err, "failed to pack "+method)
	}
	output, err := p.caller.CallContract(ctx, ethereum.CallMsg{To: &contract, Data: input}, nil)
	if err != nil {
		return nil, errs.Wrap(err, method+" call failed")
	}
	values, err := erc20ABI.Unpack(method, output)
	if err != nil {
		return nil, errs.Wrap(err, "failed to decode "+method)
	}
	if len(values) == 0 {
		return nil, errs.New("empty " + method + " output")
	}
	return values, nil
}
