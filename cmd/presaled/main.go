package main

import (
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/meverselabs/presale/cmd/closer"
	"github.com/meverselabs/presale/cmd/config"
	"github.com/meverselabs/presale/common/rlog"
	"github.com/meverselabs/presale/core/backend"
	"github.com/meverselabs/presale/core/chain"
	"github.com/meverselabs/presale/service/apiserver"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	_ "github.com/meverselabs/presale/core/backend/leveldb_driver"
	_ "github.com/meverselabs/presale/core/backend/memory_driver"
)

var Version = "dev"

func main() {
	if err := run(); err != nil {
		rlog.Error("presaled stopped", "err", err)
		os.Exit(1)
	}
}

func run() error {
	// a missing .env is fine
	_ = godotenv.Load()

	defaultPath := os.Getenv("PRESALE_CONFIG")
	if len(defaultPath) == 0 {
		defaultPath = "./config.toml"
	}
	cfgPath := pflag.StringP("config", "c", defaultPath, "config file path (.toml, .yaml)")
	rpcAddress := pflag.String("rpc", "", "json rpc bind address (default loopback)")
	storeRoot := pflag.String("store", "", "store directory")
	backendName := pflag.String("backend", "", "store backend (leveldb, memory)")
	verbose := pflag.BoolP("verbose", "v", false, "debug logging")
	version := pflag.Bool("version", false, "version info")
	pflag.Parse()

	if *version {
		fmt.Println(Version)
		return nil
	}

	var cfg Config
	if err := config.LoadFile(*cfgPath, &cfg); err != nil {
		return err
	}
	if len(*rpcAddress) > 0 {
		cfg.RPCAddress = *rpcAddress
	}
	if len(*storeRoot) > 0 {
		cfg.StoreRoot = *storeRoot
	}
	if len(*backendName) > 0 {
		cfg.Backend = *backendName
	}
	cfg.Verbose = cfg.Verbose || *verbose
	cfg.applyDefaults()
	rlog.SetVerbose(cfg.Verbose)

	cm := closer.NewManager()
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)
	go func() {
		<-sigc
		cm.CloseAll()
	}()
	defer cm.CloseAll()

	cn, g, err := openChain(&cfg)
	if err != nil {
		return err
	}
	cm.Add("chain", cn)
	rlog.Info("presale ready",
		"presale", g.Presale.String(),
		"saleToken", g.SaleToken.String(),
		"payToken", g.PayToken.String(),
		"mainToken", g.MainToken.String(),
	)

	s := apiserver.NewAPIServer()
	if err := apiserver.RegisterChain(s, cn); err != nil {
		return err
	}
	cm.Add("apiserver", closer.CloserFunc(func() {
		if err := s.Close(); err != nil {
			rlog.Warn("apiserver close", "err", err)
		}
	}))
	go func() {
		if err := s.Run(cfg.RPCAddress); err != nil {
			rlog.Error("apiserver stopped", "err", err)
			cm.CloseAll()
		}
	}()

	cm.Wait()
	return nil
}

func openChain(cfg *Config) (*chain.Chain, *Genesis, error) {
	path := cfg.StoreRoot
	if cfg.Backend != "memory" {
		if err := os.MkdirAll(cfg.StoreRoot, 0755); err != nil {
			return nil, nil, errors.WithStack(err)
		}
		path = filepath.Join(cfg.StoreRoot, "chain")
	}
	db, err := backend.Create(cfg.Backend, path)
	if err != nil {
		return nil, nil, err
	}
	st, err := chain.NewStore(db, new(big.Int).SetUint64(cfg.ChainID))
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	cn := chain.NewChain(st, nil)
	g := &Genesis{}
	if err := cn.Init(g.Build(cfg)); err != nil {
		cn.Close()
		return nil, nil, err
	}
	return cn, g, nil
}
