package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/registrarlabs/credchain-backend/internal/audit"
	"github.com/registrarlabs/credchain-backend/internal/credential"
	"github.com/registrarlabs/credchain-backend/internal/ethereum"
	"github.com/registrarlabs/credchain-backend/internal/ipfs"
	"github.com/registrarlabs/credchain-backend/internal/metrics"
	"github.com/registrarlabs/credchain-backend/internal/model"
	clickhouseRepo "github.com/registrarlabs/credchain-backend/internal/repository/clickhouse"
	"github.com/registrarlabs/credchain-backend/internal/repository/postgres"
	"github.com/registrarlabs/credchain-backend/internal/transport"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type config struct {
	Addr                string        `long:"addr" env:"ISSUER_API_ADDR" description:"HTTP listen address" default:":8000"`
	MetricsAddr         string        `long:"metrics-addr" env:"ISSUER_API_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	PostgresDSN         string        `long:"postgres-dsn" env:"ISSUER_API_POSTGRES_DSN" description:"Postgres DSN for credential records" required:"true"`
	ClickhouseDSN       string        `long:"clickhouse-dsn" env:"ISSUER_API_CLICKHOUSE_DSN" description:"ClickHouse DSN for the audit trail (audit disabled when empty)"`
	IPFSAPIURL          string        `long:"ipfs-api-url" env:"ISSUER_API_IPFS_API_URL" description:"IPFS HTTP API address" default:"localhost:5001"`
	IPFSGatewayURL      string        `long:"ipfs-gateway-url" env:"ISSUER_API_IPFS_GATEWAY_URL" description:"Public IPFS gateway base for image links in verification responses" default:"https://gateway.pinata.cloud/ipfs"`
	RPCURL              string        `long:"rpc-url" env:"ISSUER_API_RPC_URL" description:"Ethereum RPC URL" default:"http://127.0.0.1:8545"`
	PrivateKey          string        `long:"private-key" env:"ISSUER_API_PRIVATE_KEY" description:"hex private key of the issuing wallet" required:"true"`
	ContractDataDir     string        `long:"contract-data-dir" env:"ISSUER_API_CONTRACT_DATA_DIR" description:"directory with contract deployment artifacts" default:"blockchain_data"`
	Network             model.Network `long:"network" env:"ISSUER_API_NETWORK" description:"network name" required:"true"`
	ChainID             int64         `long:"chain-id" env:"ISSUER_API_CHAIN_ID" description:"expected chain id (0 to accept the node's)"`
	ConfirmationTimeout time.Duration `long:"confirmation-timeout" env:"ISSUER_API_CONFIRMATION_TIMEOUT" description:"how long to wait for a transaction to be mined" default:"2m"`
	PollInterval        time.Duration `long:"poll-interval" env:"ISSUER_API_POLL_INTERVAL" description:"receipt polling interval" default:"2s"`
	ReadRPS             int           `long:"read-rps" env:"ISSUER_API_READ_RPS" description:"rate limit for read-only ledger calls" default:"20"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("issuer api failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	contractAddress, contractABI, err := ethereum.LoadContractArtifacts(cfg.ContractDataDir)
	if err != nil {
		return fmt.Errorf("load contract artifacts: %w", err)
	}

	ledger, err := ethereum.NewClient(ctx, ethereum.Config{
		RPCURL:              cfg.RPCURL,
		PrivateKeyHex:       cfg.PrivateKey,
		ContractAddress:     contractAddress,
		ContractABI:         contractABI,
		ChainID:             cfg.ChainID,
		Network:             cfg.Network,
		ConfirmationTimeout: cfg.ConfirmationTimeout,
		PollInterval:        cfg.PollInterval,
		ReadRPS:             cfg.ReadRPS,
	}, metrics.NewLedgerClient(cfg.Network), logger)
	if err != nil {
		return fmt.Errorf("init ledger client: %w", err)
	}

	store := ipfs.NewClient(cfg.IPFSAPIURL, metrics.NewIPFSClient(), logger)

	records, err := postgres.NewRepository(ctx, cfg.PostgresDSN, metrics.NewPostgresRepository())
	if err != nil {
		return fmt.Errorf("init record repository: %w", err)
	}

	var trail *audit.Trail
	if cfg.ClickhouseDSN != "" {
		auditRepo, err := clickhouseRepo.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init audit repository: %w", err)
		}
		defer func() {
			_ = auditRepo.Close()
		}()
		trail = audit.NewTrail(auditRepo, logger)
		trail.Start(ctx)
		defer trail.Stop()
	} else {
		logger.Warn("no clickhouse dsn configured, audit trail disabled")
	}

	var auditSink credential.AuditTrail
	if trail != nil {
		auditSink = trail
	}

	issuer, err := credential.NewIssuer(ledger, store, records, auditSink, cfg.Network, metrics.NewIssuer(cfg.Network), logger)
	if err != nil {
		return fmt.Errorf("init issuer: %w", err)
	}
	verifier, err := credential.NewVerifier(ledger, store, metrics.NewVerifier(cfg.Network), logger)
	if err != nil {
		return fmt.Errorf("init verifier: %w", err)
	}

	handler := transport.NewHandler(issuer, verifier, cfg.IPFSGatewayURL, logger)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           cors.Default().Handler(handler.Routes()),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		// Issuance responses wait out transaction confirmation.
		WriteTimeout: cfg.ConfirmationTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting http server", zap.String("addr", cfg.Addr))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
