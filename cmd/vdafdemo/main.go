// Command vdafdemo runs one Prio3 batch end to end — Setup, Shard,
// PrepInit/PrepSharesToPrep/PrepNext per measurement, Aggregate, and
// Unshard — against a YAML-described circuit and measurement batch, and
// serves liveness/readiness endpoints for the duration of the run.
//
//	go run ./cmd/vdafdemo --config=batch.yaml
//
// # Configuration File
//
//	shares: 2
//	circuit:
//	  type: count   # count, sum, or histogram
//	  bits: 8       # sum only
//	  buckets: [1, 10, 100]  # histogram only
//	listen_addr: ":8090"
//	measurements:
//	  - value: 1
//	    nonce: "01010101010101010101010101010101"
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
)

func main() {
	configPath := flag.String("config", "", "path to YAML batch config file")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "usage: vdafdemo --config=batch.yaml")
		os.Exit(2)
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Error("loading config", "err", err)
		os.Exit(1)
	}

	status := newStatusServer(log, cfg.ListenAddr)
	status.runInBackground()

	result, err := RunBatch(log, cfg)
	if err != nil {
		log.Error("running batch", "err", err)
		status.isReady.Store(false)
		os.Exit(1)
	}
	status.isReady.Store(true)

	log.Info("batch complete", "result", result)
}
