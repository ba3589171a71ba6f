package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"
)

func main() {
	profilePath := flag.String("config", "", "Path to the YAML profile with RPC endpoint and contract addresses")
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	registryAddress := flag.String("registry", "", "Node registry contract address or hash")
	assetAddress := flag.String("asset", "", "Node asset contract address or hash")
	nodeID := flag.String("node", "", "Identifier of the node to print")
	ownerAddress := flag.String("owner", "", "Owner account: prints standalone checkpoint of the node and owned tokens")
	tokenID := flag.String("token", "", "Base58 encoded token ID to print")
	verbose := flag.Bool("v", false, "Enable debug logging")

	flag.Parse()

	p := profile{}
	if *profilePath != "" {
		var err error
		p, err = loadProfile(*profilePath)
		if err != nil {
			log.Fatal(err)
		}
	}
	p.override(profile{
		RPC:      *neoRPCEndpoint,
		Registry: *registryAddress,
		Asset:    *assetAddress,
	})

	logger, err := newLogger(*verbose)
	if err != nil {
		log.Fatal(fmt.Errorf("init logger: %w", err))
	}
	defer func() { _ = logger.Sync() }()

	err = run(logger, p, query{
		node:  *nodeID,
		owner: *ownerAddress,
		token: *tokenID,
	})
	if err != nil {
		logger.Error("query failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

// query groups objects requested on the command line.
type query struct {
	node  string
	owner string
	token string
}

func run(logger *zap.Logger, p profile, q query) error {
	err := p.validate()
	if err != nil {
		return err
	}

	contracts, err := p.contracts()
	if err != nil {
		return err
	}

	b, err := newRemoteBlockChain(p.RPC)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}

	defer b.close()

	logger.Debug("connected to the chain",
		zap.String("endpoint", p.RPC), zap.Uint32("height", b.currentBlock))

	r := newReporter(os.Stdout, b, contracts)

	err = r.authority()
	if err != nil {
		// Authority is optional for a freshly deployed registry.
		logger.Info("authority is not available", zap.Error(err))
	}

	if q.node != "" {
		err = r.node(q.node)
		if err != nil {
			return fmt.Errorf("read node '%s': %w", q.node, err)
		}
	}

	if q.owner != "" {
		owner, err := parseAccount(q.owner)
		if err != nil {
			return fmt.Errorf("invalid owner: %w", err)
		}

		if q.node != "" {
			err = r.checkpoint(owner, q.node)
			if err != nil && !errors.Is(err, errNotFound) {
				return fmt.Errorf("read checkpoint: %w", err)
			}
		}

		if contracts.asset != nil {
			err = r.tokensOf(owner)
			if err != nil {
				return fmt.Errorf("read tokens: %w", err)
			}
		}
	}

	if q.token != "" {
		if contracts.asset == nil {
			return errors.New("asset contract is required to read tokens")
		}
		err = r.token(q.token)
		if err != nil {
			return fmt.Errorf("read token: %w", err)
		}
	}

	return nil
}
