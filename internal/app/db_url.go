package app

import (
	"net/url"
	"path"
	"strings"
)

func normalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil {
		return raw
	}

	query := parsed.Query()
	if query.Get("disable_prepared_binary_result") == "" {
		query.Set("disable_prepared_binary_result", "yes")
		parsed.RawQuery = query.Encode()
	}

	return parsed.String()
}

// dbNameFromURL extracts the database name used for span and log attributes.
// It understands postgres URLs, key=value DSNs and go-sqlite3 file DSNs.
func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if isSQLiteDSN(trimmed) {
		return sqliteDBName(trimmed)
	}

	parsed, err := url.Parse(trimmed)
	if err == nil && parsed != nil && parsed.Scheme != "" {
		name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
		if name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		if !strings.HasPrefix(token, "dbname=") {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(token, "dbname="))
		name = strings.Trim(name, `"'`)
		if name != "" {
			return name
		}
	}

	return ""
}

func isSQLiteDSN(dsn string) bool {
	file := strings.SplitN(dsn, "?", 2)[0]
	return strings.HasPrefix(dsn, "file:") ||
		strings.HasPrefix(dsn, ":memory:") ||
		strings.HasSuffix(file, ".db")
}

func sqliteDBName(dsn string) string {
	file := strings.TrimPrefix(dsn, "file:")
	file = strings.SplitN(file, "?", 2)[0]
	file = strings.TrimPrefix(file, "//")
	if file == "" || file == ":memory:" || strings.Contains(dsn, "mode=memory") {
		return "memory"
	}

	base := path.Base(file)
	return strings.TrimSuffix(base, path.Ext(base))
}
