package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	conf := Configuration{}
	conf.Auth.JWTExpireInSec = 60
	require.EqualError(t, conf.Validate(), "JWT_SECRET is required")

	conf.Auth.JWTSecret = "secret"
	require.NoError(t, conf.Validate())

	conf.Auth.JWTExpireInSec = 0
	require.Error(t, conf.Validate())
}

func TestDSN(t *testing.T) {
	conf := Configuration{}
	conf.Database.Host = "db"
	conf.Database.Port = "5433"
	conf.Database.User = "hire"
	conf.Database.Name = "skills"
	conf.Database.Password = "pw"
	require.Equal(t, "host=db port=5433 user=hire dbname=skills sslmode=disable password=pw", conf.DSN())

	conf.Database.URL = "postgres://hire:pw@db:5433/skills"
	require.Equal(t, "postgres://hire:pw@db:5433/skills", conf.DSN())
}
