package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/cqlmcp/mcp-cassandra/cassandra"
	"github.com/cqlmcp/mcp-cassandra/schema"
)

type toolFunc = func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

// jsonResult marshals v as an indented JSON tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal results: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// ListKeyspacesHandler creates a handler for the list_keyspaces tool
func ListKeyspacesHandler(sess *cassandra.Session) toolFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		includeSystem := false
		if args, ok := request.Params.Arguments.(map[string]any); ok {
			if v, ok := args["include_system"].(bool); ok {
				includeSystem = v
			}
		}

		keyspaces, err := sess.Keyspaces(ctx, includeSystem)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list keyspaces: %v", err)), nil
		}

		return jsonResult(keyspaces)
	}
}

// ListTablesHandler creates a handler for the list_tables tool
func ListTablesHandler(sess *cassandra.Session) toolFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		keyspace, err := request.RequireString("keyspace")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Missing keyspace parameter: %v", err)), nil
		}

		tables, err := sess.Tables(ctx, keyspace)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list tables: %v", err)), nil
		}
		if len(tables) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("No tables found in keyspace '%s'", keyspace)), nil
		}

		return jsonResult(tables)
	}
}

// fetchTableRows gathers the catalog rows the describe and DDL tools share.
// A nil table row means the table does not exist.
func fetchTableRows(ctx context.Context, sess *cassandra.Session, keyspace, table string) (*schema.TableRow, []schema.ColumnRow, []schema.KeyColumnRow, error) {
	tableRow, err := sess.TableRow(ctx, keyspace, table)
	if err != nil || tableRow == nil {
		return tableRow, nil, nil, err
	}

	columnRows, err := sess.Columns(ctx, keyspace, table)
	if err != nil {
		return nil, nil, nil, err
	}
	keyRows, err := sess.KeyColumns(ctx, keyspace, table)
	if err != nil {
		return nil, nil, nil, err
	}
	return tableRow, columnRows, keyRows, nil
}

// DescribeTableHandler creates a handler for the describe_table tool
func DescribeTableHandler(sess *cassandra.Session) toolFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		keyspace, err := request.RequireString("keyspace")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Missing keyspace parameter: %v", err)), nil
		}
		table, err := request.RequireString("table")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Missing table parameter: %v", err)), nil
		}

		tableRow, columnRows, keyRows, err := fetchTableRows(ctx, sess, keyspace, table)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Describe failed: %v", err)), nil
		}
		if tableRow == nil {
			return mcp.NewToolResultError(fmt.Sprintf("Table '%s' not found in keyspace '%s'", table, keyspace)), nil
		}

		return jsonResult(schema.Describe(*tableRow, columnRows, keyRows))
	}
}

// TableDDLHandler creates a handler for the table_ddl tool
func TableDDLHandler(sess *cassandra.Session) toolFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		keyspace, err := request.RequireString("keyspace")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Missing keyspace parameter: %v", err)), nil
		}
		table, err := request.RequireString("table")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Missing table parameter: %v", err)), nil
		}

		tableRow, columnRows, keyRows, err := fetchTableRows(ctx, sess, keyspace, table)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("DDL synthesis failed: %v", err)), nil
		}
		if tableRow == nil {
			return mcp.NewToolResultError(fmt.Sprintf("Table '%s' not found in keyspace '%s'", table, keyspace)), nil
		}

		ddl, err := schema.DDL(*tableRow, columnRows, keyRows)
		if err != nil {
			if errors.Is(err, schema.ErrNoColumns) {
				return mcp.NewToolResultError(fmt.Sprintf("Table '%s.%s' has no columns to describe", keyspace, table)), nil
			}
			return mcp.NewToolResultError(fmt.Sprintf("DDL synthesis failed: %v", err)), nil
		}

		return mcp.NewToolResultText(ddl), nil
	}
}

// ListSchemaObjectsHandler creates a handler for the list_schema_objects tool
func ListSchemaObjectsHandler(sess *cassandra.Session) toolFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		keyspace, err := request.RequireString("keyspace")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Missing keyspace parameter: %v", err)), nil
		}

		tableFilter := ""
		if args, ok := request.Params.Arguments.(map[string]any); ok {
			if v, ok := args["table"].(string); ok {
				tableFilter = v
			}
		}

		indexRows, err := sess.Indexes(ctx, keyspace)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list indexes: %v", err)), nil
		}
		viewRows, err := sess.Views(ctx, keyspace)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list views: %v", err)), nil
		}

		return jsonResult(schema.ListSchemaObjects(indexRows, viewRows, tableFilter))
	}
}

// QueryHandler creates a handler for the query tool
func QueryHandler(sess *cassandra.Session) toolFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Missing query parameter: %v", err)), nil
		}

		results, err := sess.ReadQuery(ctx, query)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Query failed: %v", err)), nil
		}

		return jsonResult(results)
	}
}

// SampleHandler creates a handler for the sample_table tool
func SampleHandler(sess *cassandra.Session) toolFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		keyspace, err := request.RequireString("keyspace")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Missing keyspace parameter: %v", err)), nil
		}
		table, err := request.RequireString("table")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Missing table parameter: %v", err)), nil
		}

		limit := 10
		if args, ok := request.Params.Arguments.(map[string]any); ok {
			if v, ok := args["limit"].(float64); ok && v > 0 {
				limit = int(v)
			}
		}

		results, err := sess.Sample(ctx, keyspace, table, limit)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Sample failed: %v", err)), nil
		}

		return jsonResult(results)
	}
}
