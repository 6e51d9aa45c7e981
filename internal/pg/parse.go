package pg

import (
	"errors"
	"fmt"

	pg_query "github.com/pganalyze/pg_query_go/v5"
	"github.com/pganalyze/pg_query_go/v5/parser"
)

func parseSql(m string) (*pg_query.ParseResult, error) {
	ast, err := pg_query.Parse(m)
	if err != nil {
		var perr *parser.Error
		if errors.As(err, &perr) && perr.Cursorpos > 0 {
			return nil, fmt.Errorf(`failed to parse AST at line %d: %w`, resolveLine(m, perr.Cursorpos-1), err)
		}

		return nil, fmt.Errorf(`failed to parse AST: %w`, err)
	}

	return ast, nil
}
