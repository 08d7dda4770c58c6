package main

import (
	"context"
	"encoding/json"
	"flag"

	_ "github.com/lib/pq"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/tradekit/matching-engine/config"
	postgres_wrapper "github.com/tradekit/matching-engine/pkg/infra/postgres"
	"github.com/tradekit/matching-engine/pkg/logging"
	"github.com/tradekit/matching-engine/pkg/oms/repo"
	"github.com/tradekit/matching-engine/pkg/oms/worker"
)

func main() {
	var configFile string
	flag.StringVar(&configFile, "config-file", "", "Specify config file path")
	flag.Parse()

	cfg, err := config.Load(configFile)
	if err != nil {
		panic(err)
	}
	logger := logging.Init(cfg.ServiceName, logging.INFO)
	defer logger.Sync()

	configBytes, err := json.MarshalIndent(cfg, "", "   ")
	if err != nil {
		zap.S().Warnf("could not convert config to JSON: %v", err)
	} else {
		zap.S().Debugf("load config %s", string(configBytes))
	}

	ctx := context.Background()

	nc, err := nats.Connect(cfg.Nats.URL)
	if err != nil {
		zap.S().Fatalf("connect nats: %v", err)
	}
	js, err := nc.JetStream()
	if err != nil {
		zap.S().Fatalf("init jetstream: %v", err)
	}

	_, _ = js.AddStream(&nats.StreamConfig{
		Name:     cfg.Nats.Stream,
		Subjects: []string{cfg.Nats.Stream + ".*"},
	})

	db, err := postgres_wrapper.InitPostgres(cfg.OmsDB)
	if err != nil {
		zap.S().Errorf("init db fail with err: %v", err)
		panic(err)
	}

	sqlRepo := repo.NewRepo(db)

	w := worker.NewWorker(sqlRepo)
	go w.StartConsumer(ctx, js, cfg.Nats.EventSubject, "order_event_worker")

	select {}
}
