package pg

import pg_query "github.com/pganalyze/pg_query_go/v5"

func getString(node *pg_query.Node) string {
	return node.GetString_().GetSval()
}

func relationName(rel *pg_query.RangeVar) TableName {
	return NewTableName(rel.GetRelname(), rel.GetSchemaname())
}

// resolveLine returns the 1-based line of the byte offset pos in sql.
func resolveLine(sql string, pos int) int {
	line := 1

	for i := 0; i < len(sql); i += 1 {
		if i == pos {
			break
		}

		if sql[i] == '\n' {
			line += 1
		}
	}

	return line
}
