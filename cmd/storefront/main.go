package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"MobileStore/internal/catalog"
	"MobileStore/internal/config"
	"MobileStore/pkg/kit"
)

func main() {
	service := "storefront"

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := kit.NewLogger(service, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	provider := catalog.NewProvider(
		catalog.WithContract(cfg.Contract()),
		catalog.WithMetrics(reg),
	)
	log.Info("catalog ready", zap.String("contract", string(provider.Contract())))

	s := &catalog.Server{
		Store:           provider,
		Log:             log,
		StoreName:       cfg.StoreName,
		DefaultCategory: cfg.DefaultCategory,
	}

	h := catalog.NewHandler(s, catalog.HTTPDeps{
		Log:               log,
		Service:           service,
		Registry:          reg,
		MetricsEnabled:    cfg.MetricsEnabled,
		MetricsToken:      cfg.MetricsToken,
		RateLimit:         cfg.RateLimit,
		RateWindowSeconds: cfg.RateWindowSeconds,
	})

	if err := kit.RunHTTPServer(cfg.Addr(), h, log, cfg.ShutdownTimeout); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
