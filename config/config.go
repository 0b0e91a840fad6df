package config

import (
	"github.com/gotify/configor"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"5000"  env:"APP_PORT"`
		LogLevel   string `default:"info" env:"LOG_LEVEL"`
	}
	Database struct {
		URL            string `default:"" env:"DATABASE_URL"`
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"skill-hire" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret      string `default:"" env:"JWT_SECRET"`
		JWTExpireInSec int64  `default:"604800" env:"JWT_EXPIRE_IN_SEC"` // 7 days
	}
	Submission struct {
		// recompute the score server side instead of trusting the client value
		RecomputeScore *bool `default:"false" env:"SUBMISSION_RECOMPUTE_SCORE"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Debug(".env not found, using process environment")
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	if err = conf.Validate(); err != nil {
		panic(err)
	}
	Conf = conf
}

func (c *Configuration) Validate() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.Auth.JWTExpireInSec <= 0 {
		return errors.New("JWT_EXPIRE_IN_SEC must be positive")
	}
	return nil
}

func (c *Configuration) DSN() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	return "host=" + c.Database.Host +
		" port=" + c.Database.Port +
		" user=" + c.Database.User +
		" dbname=" + c.Database.Name +
		" sslmode=disable password=" + c.Database.Password
}
