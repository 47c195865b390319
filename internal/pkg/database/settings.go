package database

import (
	"fmt"
	"net"
	"net/url"
)

type PostgresSettings struct {
	User       string
	Password   string
	Host       string
	Port       string
	DBName     string
	SSlEnabled bool
}

func (s PostgresSettings) GetUrl() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(s.User, s.Password),
		Host:   net.JoinHostPort(s.Host, s.Port),
		Path:   s.DBName,
	}

	if !s.SSlEnabled {
		u.RawQuery = "sslmode=disable"
	}

	return u.String()
}

func (s PostgresSettings) String() string {
	return fmt.Sprintf("postgres://%s@%s/%s", s.User, net.JoinHostPort(s.Host, s.Port), s.DBName)
}
