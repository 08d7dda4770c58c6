package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/nats-io/nats.go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tradekit/matching-engine/config"
	"github.com/tradekit/matching-engine/pkg/feed"
	postgres_wrapper "github.com/tradekit/matching-engine/pkg/infra/postgres"
	redis_wrapper "github.com/tradekit/matching-engine/pkg/infra/redis"
	kafkawrapper "github.com/tradekit/matching-engine/pkg/kafka_wrapper"
	"github.com/tradekit/matching-engine/pkg/logging"
	"github.com/tradekit/matching-engine/pkg/oms"
	"github.com/tradekit/matching-engine/pkg/oms/repo"
	"github.com/tradekit/matching-engine/pkg/sink"
)

func main() {
	var configFile string
	flag.StringVar(&configFile, "config-file", "", "Specify config file path")
	flag.Parse()

	go func() {
		http.ListenAndServe("localhost:6060", nil)
	}()

	cfg, err := config.Load(configFile)
	if err != nil {
		panic(err)
	}
	logger := logging.Init(cfg.ServiceName, logging.INFO)
	defer logger.Sync()

	tick, err := decimal.NewFromString(cfg.Engine.TickSize)
	if err != nil || tick.Sign() <= 0 {
		zap.S().Fatalf("invalid tick size %q: %v", cfg.Engine.TickSize, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	var in io.Reader = os.Stdin
	if cfg.Engine.FeedFile != "" {
		f, err := os.Open(cfg.Engine.FeedFile)
		if err != nil {
			zap.S().Fatalf("open feed file: %v", err)
		}
		defer f.Close()
		in = f
	}

	gateway := feed.NewGateway(in, cfg.Engine.Symbol)
	s := oms.NewOMS(&oms.Config{Symbol: cfg.Engine.Symbol, TickSize: tick}, gateway)
	gateway.AddOmsInstance(s)

	if cfg.Kafka != nil {
		producer := kafkawrapper.NewProducer(kafkawrapper.ProducerConfig{Brokers: cfg.Kafka.Brokers})
		defer producer.Close()
		s.RegisterTradeSink(sink.NewKafkaSink(producer, cfg.Kafka.TradeTopic))
	}

	if cfg.Redis != nil {
		client, err := redis_wrapper.InitRedis(cfg.Redis)
		if err != nil {
			zap.S().Fatalf("init redis: %v", err)
		}
		s.RegisterTradeSink(sink.NewLastPriceSink(client))
	}

	if cfg.OmsDB != nil {
		db := postgres_wrapper.InitPostgresWithBackoff(cfg.OmsDB)
		s.RegisterTradeSink(sink.NewDatabaseSink(repo.NewRepo(db)))
	}

	if cfg.Nats != nil {
		nc, err := nats.Connect(cfg.Nats.URL)
		if err != nil {
			zap.S().Fatalf("connect nats: %v", err)
		}
		defer nc.Close()
		js, err := nc.JetStream(nats.PublishAsyncMaxPending(65536))
		if err != nil {
			zap.S().Fatalf("init jetstream: %v", err)
		}
		_, _ = js.AddStream(&nats.StreamConfig{
			Name:     cfg.Nats.Stream,
			Subjects: []string{cfg.Nats.Stream + ".*"},
		})
		s.SetEventStream(js, cfg.Nats.EventSubject)
	}

	done := make(chan error, 1)
	go func() {
		done <- s.Start(ctx)
	}()
	fmt.Println("Matching engine started. Press Ctrl+C to exit.")

	select {
	case <-sigs:
		fmt.Println("Shutting down...")
	case err := <-done:
		if err != nil && err != context.Canceled {
			zap.S().Errorf("feed stopped: %v", err)
		} else {
			fmt.Println("Feed exhausted.")
		}
	}

	s.Stop()
	cancel()

	fmt.Println("Exited cleanly.")
}
