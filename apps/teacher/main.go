package main

import (
	"log"
	"os"

	"github.com/darasaonline/darasa/core"
	logsvc "github.com/darasaonline/darasa/services/logger"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "DARASA : ", log.LstdFlags|log.Lmicroseconds)

	conf := core.LoadConfig()

	var appLog core.Logger
	if conf.Debug {
		appLog = logsvc.NewConsoleLogger(logger)
	} else {
		appLog = logsvc.NewRollbarLogger(logger, conf)
	}

	cli := commandLine{conf: conf, log: appLog}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
