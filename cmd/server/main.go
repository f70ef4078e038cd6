package main

import (
	"flag"

	"github.com/sirupsen/logrus"

	"toolbridge/internal/config"
	"toolbridge/internal/logging"
	"toolbridge/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}

	logging.Setup(cfg.Log)

	if err := server.Run(cfg); err != nil {
		logrus.Fatalf("server failed: %v", err)
	}
}
