package cassandra

import (
	"fmt"
	"strings"
	"time"

	gocql "github.com/apache/cassandra-gocql-driver/v2"

	"github.com/cqlmcp/mcp-cassandra/config"
	"github.com/cqlmcp/mcp-cassandra/logger"
)

// Session wraps a gocql session with the catalog readers and query helpers
// the tool handlers need.
type Session struct {
	*gocql.Session
}

// quietLogger suppresses gocql's own log output; connection problems are
// reported through the returned errors instead.
type quietLogger struct{}

func (quietLogger) Error(msg string, fields ...gocql.LogField)   {}
func (quietLogger) Warning(msg string, fields ...gocql.LogField) {}
func (quietLogger) Info(msg string, fields ...gocql.LogField)    {}
func (quietLogger) Debug(msg string, fields ...gocql.LogField)   {}

// Connect builds a cluster config from cfg and opens a session, falling back
// through protocol versions 5, 4 and 3 so older clusters still connect.
func Connect(cfg *config.CassandraConfig) (*Session, error) {
	cluster := gocql.NewCluster(cfg.Hosts...)
	cluster.Port = cfg.Port
	cluster.Logger = quietLogger{}
	cluster.Consistency = parseConsistency(cfg.Consistency)
	cluster.Timeout = time.Duration(cfg.RequestTimeout) * time.Second
	cluster.ConnectTimeout = time.Duration(cfg.ConnectTimeout) * time.Second
	cluster.DisableInitialHostLookup = true

	if cfg.Keyspace != "" {
		cluster.Keyspace = cfg.Keyspace
	}
	if cfg.Username != "" && cfg.Password != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: cfg.Username,
			Password: cfg.Password,
		}
	}

	var session *gocql.Session
	var err error
	for _, protoVer := range []int{5, 4, 3} {
		cluster.ProtoVersion = protoVer
		session, err = cluster.CreateSession()
		if err == nil {
			logger.Debugf("connected with protocol version %d", protoVer)
			break
		}
		logger.Debugf("protocol version %d failed: %v", protoVer, err)
	}
	if session == nil {
		return nil, fmt.Errorf("failed to connect to cassandra with any supported protocol version: %w", err)
	}

	return &Session{Session: session}, nil
}

// parseConsistency maps a config consistency string to a gocql constant,
// defaulting to LOCAL_ONE for anything unrecognized.
func parseConsistency(name string) gocql.Consistency {
	switch strings.ToUpper(name) {
	case "ANY":
		return gocql.Any
	case "ONE":
		return gocql.One
	case "TWO":
		return gocql.Two
	case "THREE":
		return gocql.Three
	case "QUORUM":
		return gocql.Quorum
	case "ALL":
		return gocql.All
	case "LOCAL_QUORUM":
		return gocql.LocalQuorum
	case "EACH_QUORUM":
		return gocql.EachQuorum
	case "LOCAL_ONE":
		return gocql.LocalOne
	default:
		logger.Warnf("unrecognized consistency level %q, defaulting to LOCAL_ONE", name)
		return gocql.LocalOne
	}
}

// Close tears down the underlying session.
func (s *Session) Close() {
	if s.Session != nil {
		s.Session.Close()
	}
}
