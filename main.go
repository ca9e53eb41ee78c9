package main

import (
	"flag"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/cqlmcp/mcp-cassandra/cassandra"
	"github.com/cqlmcp/mcp-cassandra/config"
	"github.com/cqlmcp/mcp-cassandra/logger"
	"github.com/cqlmcp/mcp-cassandra/mcp"
)

const version = "0.1.0"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Errorf("config error: %v", err)
		os.Exit(1)
	}

	logger.SetGlobal(logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	}))

	sess, err := cassandra.Connect(&cfg.Cassandra)
	if err != nil {
		logger.Errorf("failed to connect to cassandra: %v", err)
		os.Exit(1)
	}
	defer sess.Close()

	s := server.NewMCPServer(
		"mcp-cassandra",
		version,
		server.WithToolCapabilities(false),
		server.WithLogging(),
	)

	mcp.RegisterTools(s, sess)
	logger.Infof("connected to %v, serving on stdio", cfg.Cassandra.Hosts)

	if err := server.ServeStdio(s); err != nil {
		logger.Errorf("server error: %v", err)
		os.Exit(1)
	}
}
