package db

import (
	"net"
	"net/url"
	"strconv"

	"github.com/vvka-141/emploader/pkg/emploader"
)

// BuildConnectionString converts a ConnectionConfig to a PostgreSQL URI for pgx.
// Empty fields are left out so pgx can fall back to PG* environment
// variables and .pgpass.
func BuildConnectionString(config *emploader.ConnectionConfig) string {
	u := &url.URL{
		Scheme: "postgresql",
		Host:   net.JoinHostPort(config.Host, strconv.Itoa(config.Port)),
		Path:   "/" + config.Database,
	}

	if config.Username != "" {
		if config.Password != "" {
			u.User = url.UserPassword(config.Username, config.Password)
		} else {
			u.User = url.User(config.Username)
		}
	}

	query := url.Values{}
	if config.SSLMode != "" {
		query.Set("sslmode", config.SSLMode)
	}
	if config.AppName != "" {
		query.Set("application_name", config.AppName)
	}
	if config.ConnectTimeout > 0 {
		seconds := int(config.ConnectTimeout.Seconds())
		if seconds < 1 {
			seconds = 1
		}
		query.Set("connect_timeout", strconv.Itoa(seconds))
	}

	for key, value := range config.AdditionalParams {
		query.Set(key, value)
	}

	u.RawQuery = query.Encode()
	return u.String()
}
