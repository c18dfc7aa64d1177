package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"sql-gateway/configs"
	"sql-gateway/pkg/apperr"

	_ "github.com/SAP/go-hdb/driver"
	_ "github.com/denisenkom/go-mssqldb"
)

// Connector opens one connection per request. There is no pooling: the
// handle is created for the request, pinged, handed to the caller's function
// and closed on every exit path.
type Connector struct {
	serviceUser     string
	servicePassword string
}

func NewConnector(cfg *configs.Config) *Connector {
	return &Connector{
		serviceUser:     cfg.DbConfig.User,
		servicePassword: cfg.DbConfig.Password,
	}
}

// WithConnection runs fn with a freshly opened connection to target and
// guarantees release. When user is empty the fixed service credential is
// used instead of the caller identity.
func (c *Connector) WithConnection(ctx context.Context, target Target, user, password string, fn func(*sql.DB) error) error {
	if user == "" {
		user = c.serviceUser
		password = c.servicePassword
	}

	driverName, connStr, err := buildConnString(target, user, password)
	if err != nil {
		return &apperr.ConnectionError{Err: err}
	}

	handle, err := sql.Open(driverName, connStr)
	if err != nil {
		return &apperr.ConnectionError{Err: err}
	}
	defer handle.Close()

	handle.SetMaxOpenConns(1)
	handle.SetMaxIdleConns(1)
	handle.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := handle.PingContext(pingCtx); err != nil {
		return &apperr.ConnectionError{Err: err}
	}

	return fn(handle)
}

func buildConnString(target Target, user, password string) (string, string, error) {
	if target.Server == "" || target.Database == "" {
		return "", "", fmt.Errorf("target server and database are required")
	}

	host := target.Server
	if target.Port > 0 {
		host = target.Server + ":" + strconv.Itoa(target.Port)
	}

	switch target.Dialect {
	case "", DialectMSSQL:
		u := &url.URL{
			Scheme: "sqlserver",
			User:   url.UserPassword(user, password),
			Host:   host,
		}
		q := url.Values{}
		q.Set("database", target.Database)
		q.Set("encrypt", "disable")
		u.RawQuery = q.Encode()
		return "sqlserver", u.String(), nil
	case DialectHANA:
		u := &url.URL{
			Scheme: "hdb",
			User:   url.UserPassword(user, password),
			Host:   host,
		}
		q := url.Values{}
		q.Set("databaseName", target.Database)
		u.RawQuery = q.Encode()
		return "hdb", u.String(), nil
	default:
		return "", "", fmt.Errorf("unsupported db dialect: %s", target.Dialect)
	}
}
