package mcp

import (
	goMCP "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/cqlmcp/mcp-cassandra/cassandra"
	"github.com/cqlmcp/mcp-cassandra/handlers"
)

func RegisterTools(s *server.MCPServer, sess *cassandra.Session) {
	listKeyspacesTool := goMCP.NewTool("list_keyspaces",
		goMCP.WithDescription("List keyspaces in the cluster"),
		goMCP.WithBoolean("include_system",
			goMCP.Description("Include system keyspaces (default: false)"),
		),
	)

	listTablesTool := goMCP.NewTool("list_tables",
		goMCP.WithDescription("List tables in a keyspace"),
		goMCP.WithString("keyspace",
			goMCP.Required(),
			goMCP.Description("Name of the keyspace"),
		),
	)

	describeTableTool := goMCP.NewTool("describe_table",
		goMCP.WithDescription("Get the structured schema of a table: columns with resolved types, key roles and storage options"),
		goMCP.WithString("keyspace",
			goMCP.Required(),
			goMCP.Description("Name of the keyspace"),
		),
		goMCP.WithString("table",
			goMCP.Required(),
			goMCP.Description("Name of the table"),
		),
	)

	tableDDLTool := goMCP.NewTool("table_ddl",
		goMCP.WithDescription("Reconstruct the CREATE TABLE statement for a table from the cluster catalog"),
		goMCP.WithString("keyspace",
			goMCP.Required(),
			goMCP.Description("Name of the keyspace"),
		),
		goMCP.WithString("table",
			goMCP.Required(),
			goMCP.Description("Name of the table"),
		),
	)

	listSchemaObjectsTool := goMCP.NewTool("list_schema_objects",
		goMCP.WithDescription("List secondary indexes and materialized views of a keyspace"),
		goMCP.WithString("keyspace",
			goMCP.Required(),
			goMCP.Description("Name of the keyspace"),
		),
		goMCP.WithString("table",
			goMCP.Description("Optional table name to filter by owning/base table"),
		),
	)

	queryTool := goMCP.NewTool("query",
		goMCP.WithDescription("Execute a read-only CQL query (SELECT statements only)"),
		goMCP.WithString("query",
			goMCP.Required(),
			goMCP.Description("CQL query to execute"),
		),
	)

	sampleTableTool := goMCP.NewTool("sample_table",
		goMCP.WithDescription("Get sample rows from a table"),
		goMCP.WithString("keyspace",
			goMCP.Required(),
			goMCP.Description("Name of the keyspace"),
		),
		goMCP.WithString("table",
			goMCP.Required(),
			goMCP.Description("Name of the table to sample"),
		),
		goMCP.WithNumber("limit",
			goMCP.Description("Number of rows to return (default: 10)"),
		),
	)

	s.AddTool(listKeyspacesTool, handlers.ListKeyspacesHandler(sess))
	s.AddTool(listTablesTool, handlers.ListTablesHandler(sess))
	s.AddTool(describeTableTool, handlers.DescribeTableHandler(sess))
	s.AddTool(tableDDLTool, handlers.TableDDLHandler(sess))
	s.AddTool(listSchemaObjectsTool, handlers.ListSchemaObjectsHandler(sess))
	s.AddTool(queryTool, handlers.QueryHandler(sess))
	s.AddTool(sampleTableTool, handlers.SampleHandler(sess))
}
