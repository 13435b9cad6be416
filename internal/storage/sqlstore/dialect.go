package sqlstore

import (
	"strconv"
	"strings"
)

// dialect captures what differs between the supported databases.
type dialect struct {
	name   string
	driver string
	schema string

	// numbered placeholders ($1, $2, ...) instead of ?
	numbered bool
}

var (
	sqliteDialect = dialect{
		name:   "sqlite",
		driver: "sqlite",
		schema: sqliteSchema,
	}
	postgresDialect = dialect{
		name:     "postgres",
		driver:   "pgx",
		schema:   postgresSchema,
		numbered: true,
	}
)

// rebind rewrites ? placeholders for dialects that number them.
// Queries in this package never contain a literal question mark.
func (d dialect) rebind(query string) string {
	if !d.numbered {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
