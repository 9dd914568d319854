// Package main runs the volume planner MCP server over stdio for local assistant clients.
// The same tools are mounted on the main service at /mcp when mcp_enabled is set.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/2beens/volumeplanner/internal/logging"
	"github.com/2beens/volumeplanner/internal/planner"
	"github.com/2beens/volumeplanner/internal/telemetry/metrics"
	"github.com/2beens/volumeplanner/internal/workoutplan"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

func main() {
	logLevel := flag.String("log-level", "warn", "log level, logs go to stderr")
	cacheSizeMB := flag.Int("cache-size", 4, "in-memory plan cache size in MB, 0 disables it")
	flag.Parse()

	// stdout carries the MCP protocol
	log.SetOutput(os.Stderr)
	log.SetLevel(logging.GetLevel(*logLevel))

	metricsManager := metrics.NewManager("volumeplanner", "mcp", prometheus.NewRegistry())

	p := planner.New(planner.DefaultCatalog())
	var service *workoutplan.Service
	if *cacheSizeMB > 0 {
		service = workoutplan.NewService(p, metricsManager, workoutplan.NewMemoryCache(*cacheSizeMB, 0))
	} else {
		service = workoutplan.NewService(p, metricsManager)
	}

	server := workoutplan.NewMCPServer(service, "stdio")
	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
