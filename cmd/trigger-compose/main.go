package main

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-trigger-ledger/internal/adapter"
	"github.com/feral-file/ff-trigger-ledger/internal/config"
	"github.com/feral-file/ff-trigger-ledger/internal/logger"
	"github.com/feral-file/ff-trigger-ledger/internal/store"
	"github.com/feral-file/ff-trigger-ledger/internal/trigger"
)

var (
	configFile   = flag.String("config", "", "Path to configuration file")
	envPath      = flag.String("env", "config/", "Path to environment files")
	source       = flag.String("source", "", "Address sending the trigger")
	target       = flag.String("target", "", "Hex encoded 32-byte target hash")
	payload      = flag.String("payload", "", "Trigger payload, e.g. store:{\"color\":\"red\"} for asset metadata")
	payloadIsHex = flag.Bool("hex", false, "Treat the payload as hex")
	raw          = flag.Bool("raw", false, "Send the payload as is instead of letting the target's receiver build it")
	asJSON       = flag.Bool("json", false, "Print the composed message as JSON")
	timeout      = flag.Duration("timeout", 30*time.Second, "Time allowed for composing")
)

// composed is the JSON form of a composed trigger message
type composed struct {
	Source     string `json:"source"`
	TargetHash string `json:"target_hash"`
	Data       string `json:"data"`
}

func main() {
	flag.Parse()

	if *source == "" || *target == "" {
		flag.Usage()
		os.Exit(2)
	}

	config.ChdirRepoRoot()
	cfg, err := config.LoadComposerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Initialize(logger.Config{Debug: cfg.Debug}); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db, err := store.Open(cfg.Database.DSN(), cfg.Debug)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}

	composer := trigger.NewComposer(
		trigger.Config{
			BaseAsset:           cfg.Ledger.BaseAsset,
			Unit:                cfg.Ledger.Unit,
			ShortTxTypeEncoding: cfg.Ledger.ShortTxTypeEncoding,
		},
		store.NewPGStore(db),
		trigger.DefaultRegistry(),
	)

	var data []byte
	if *raw {
		data, err = composer.Compose(ctx, *source, *target, *payload, *payloadIsHex)
	} else {
		data, err = composer.ComposeForTarget(ctx, *source, *target, *payload, *payloadIsHex)
	}
	if err != nil {
		var composeErr *trigger.ComposeError
		if errors.As(err, &composeErr) {
			fmt.Fprintln(os.Stderr, composeErr.Error())
			os.Exit(1)
		}
		logger.FatalCtx(ctx, "Failed to compose trigger", zap.Error(err))
	}

	if !*asJSON {
		fmt.Println(hex.EncodeToString(data))
		return
	}

	out, err := adapter.NewJSON().Marshal(composed{
		Source:     *source,
		TargetHash: *target,
		Data:       hex.EncodeToString(data),
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to encode output", zap.Error(err))
	}
	fmt.Println(string(out))
}
