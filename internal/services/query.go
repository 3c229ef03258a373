package services

import "strings"

// likeEscaper escapes LIKE wildcards with '!', which needs no quoting in
// SQLite, MySQL or PostgreSQL string literals.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// containsPattern returns a LIKE pattern matching s literally anywhere in
// the column. Use it with "LIKE ? ESCAPE '!'".
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
