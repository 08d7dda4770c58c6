package main

import (
	"encoding/json"
	"flag"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"

	"github.com/tradekit/matching-engine/config"
	"github.com/tradekit/matching-engine/pkg/infra"
	"github.com/tradekit/matching-engine/pkg/logging"
)

func main() {
	var configFile string
	var source string
	flag.StringVar(&configFile, "config-file", "", "Specify config file path")
	flag.StringVar(&source, "source", "file://migrations", "Migration source")
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

	infra.GetMigrateTool().Migrate(source, cfg.OmsDB.MigrationConnURL)
}
