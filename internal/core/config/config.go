package config

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}

type App struct {
	Name string
	Env  string
	HTTP HTTP
}

type Log struct {
	Level      string
	JSON       bool
	File       string // 非空时额外写文件并切割
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type Redis struct {
	Addr     string `mapstructure:"addr"` // 为空则使用本地 LRU
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type DB struct {
	Driver             string // memory / sqlite / postgres / mysql
	DSN                string
	Username           string
	Password           string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	Seed               bool // 启动时写入样例用户
	LogLevel           string
}

type Cache struct {
	LocalSize int
	TTLSec    int
}

type Table struct {
	PageSize    int
	MaxPageSize int
}

type Limits struct {
	RPS          float64
	Burst        int
	Concurrency  int64
	MaxBodyBytes int64
	TimeoutSec   int
}

type Config struct {
	App    App
	Log    Log
	DB     DB
	Redis  Redis `mapstructure:"redis"`
	Cache  Cache
	Table  Table
	Limits Limits
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "user-dashboard")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.http.host", "0.0.0.0")
	v.SetDefault("app.http.port", 8080)
	v.SetDefault("app.http.readTimeoutSec", 5)
	v.SetDefault("app.http.writeTimeoutSec", 10)
	v.SetDefault("app.http.idleTimeoutSec", 60)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("log.maxSizeMB", 100)
	v.SetDefault("log.maxBackups", 7)
	v.SetDefault("log.maxAgeDays", 30)

	v.SetDefault("db.driver", "memory")
	v.SetDefault("db.maxOpenConns", 10)
	v.SetDefault("db.maxIdleConns", 5)
	v.SetDefault("db.connMaxLifetimeMin", 30)
	v.SetDefault("db.autoMigrate", true)
	v.SetDefault("db.seed", true)
	v.SetDefault("db.logLevel", "warn")

	v.SetDefault("cache.localSize", 256)
	v.SetDefault("cache.ttlSec", 300)

	v.SetDefault("table.pageSize", 5)
	v.SetDefault("table.maxPageSize", 100)

	v.SetDefault("limits.rps", 200)
	v.SetDefault("limits.burst", 400)
	v.SetDefault("limits.concurrency", 300)
	v.SetDefault("limits.maxBodyBytes", 1<<20)
	v.SetDefault("limits.timeoutSec", 10)
}

// Load 读 YAML + APP_ 前缀环境变量；文件不存在时只用默认值
func Load(path string) *Config {
	c, err := load(path)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	return c
}

func load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
