package filter

import (
	"fmt"
	"strings"
)

// Dialect selects the JSON operators used by Predicate.SQL.
type Dialect int

const (
	// Postgres expects documents in a jsonb column named doc.
	Postgres Dialect = iota
	// SQLite expects documents as JSON text in a column named doc (JSON1).
	SQLite
)

// SQL renders the predicate as a WHERE fragment over the doc column together
// with its bind arguments. Postgres placeholders are numbered from firstArg;
// SQLite uses positional "?" and ignores it. An empty predicate yields "".
//
// Field names are never taken from input, only from the fixed set above, so
// they are inlined into the JSON paths.
func (p Predicate) SQL(d Dialect, firstArg int) (string, []any) {
	var (
		clauses []string
		args    []any
	)

	next := func() string {
		if d == SQLite {
			return "?"
		}
		return fmt.Sprintf("$%d", firstArg+len(args))
	}

	if p.Search != "" {
		ph := next()
		args = append(args, p.Search)
		clauses = append(clauses, searchClause(d, FieldApplicationName, ph))
	}

	for _, c := range p.Equals {
		ph := next()
		args = append(args, c.Value)
		clauses = append(clauses, equalsClause(d, c.Field, ph))
	}

	return strings.Join(clauses, " AND "), args
}

func searchClause(d Dialect, field, ph string) string {
	if d == SQLite {
		return fmt.Sprintf("(json_type(doc, '$.%[1]s') = 'text' AND instr(lower(json_extract(doc, '$.%[1]s')), lower(%[2]s)) > 0)", field, ph)
	}
	return fmt.Sprintf("(jsonb_typeof(doc->'%[1]s') = 'string' AND strpos(lower(doc->>'%[1]s'), lower(%[2]s)) > 0)", field, ph)
}

func equalsClause(d Dialect, field, ph string) string {
	if d == SQLite {
		return fmt.Sprintf("(json_type(doc, '$.%[1]s') = 'text' AND json_extract(doc, '$.%[1]s') = %[2]s)", field, ph)
	}
	return fmt.Sprintf("doc->'%s' = to_jsonb(%s::text)", field, ph)
}
