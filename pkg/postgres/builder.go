package postgres

import (
	"fmt"
	"net/url"
)

func ConnectionBuilder(host string, port int, user, password, dbName, sslMode, timezone string) string {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s timezone=%s",
		host,
		port,
		user,
		password,
		dbName,
		sslMode,
		timezone,
	)

	return dsn
}

// URLBuilder returns the same connection as a URL with the given scheme, as migrate drivers expect.
func URLBuilder(scheme, host string, port int, user, password, dbName, sslMode string) string {
	u := url.URL{
		Scheme:   scheme,
		User:     url.UserPassword(user, password),
		Host:     fmt.Sprintf("%s:%d", host, port),
		Path:     dbName,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}

	return u.String()
}
