package database

import "strings"

// ConstructDatabaseURL inserts the database name into a base URL and defaults sslmode
// to disable. An empty name returns the base URL unchanged.
func ConstructDatabaseURL(baseURL, databaseName string) string {
	if databaseName == "" {
		return baseURL
	}

	base, query, _ := strings.Cut(strings.TrimRight(baseURL, "/"), "?")
	url := base + "/" + databaseName

	if !strings.Contains(query, "sslmode=") {
		if query != "" {
			query += "&"
		}
		query += "sslmode=disable"
	}
	return url + "?" + query
}
