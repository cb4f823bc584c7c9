package config

import (
	"flag"
	"fmt"
	"net"
	"net/url"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env      string         `yaml:"env" env:"APP_ENV" env-default:"local"`
	HTTP     HTTPConfig     `yaml:"http"`
	Postgres PostgresConfig `yaml:"postgres"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Backend  BackendConfig  `yaml:"backend"`
	Dedup    DedupConfig    `yaml:"dedup"`
	Cache    CacheConfig    `yaml:"cache"`
	Refresh  RefreshConfig  `yaml:"refresh"`
	Surface  SurfaceConfig  `yaml:"surface"`
}

type HTTPConfig struct {
	Port int `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

type PostgresConfig struct {
	Port    string `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	Host    string `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	DbName  string `yaml:"db_name" env:"POSTGRES_DB"`
	User    string `yaml:"user" env:"POSTGRES_USER"`
	Pwd     string `yaml:"password" env:"POSTGRES_PASSWORD"`
	SslMode string `yaml:"sslmode" env-default:"disable"`
}

func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=%s",
		c.Host, c.Port, c.User, c.DbName, c.Pwd, c.SslMode)
}

// URL is the DSN in the form golang-migrate expects.
func (c PostgresConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Pwd),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.DbName,
		RawQuery: url.Values{"sslmode": {c.SslMode}}.Encode(),
	}

	return u.String()
}

type KafkaConfig struct {
	BrokerList         []string `yaml:"broker_list" env:"KAFKA_BROKERS" env-separator:","`
	RealtimeTopic      string   `yaml:"realtime_topic" env-default:"order_status_events"`
	ConsumerGroup      string   `yaml:"consumer_group" env-default:"order_notifier"`
	DeviceTokenTopic   string   `yaml:"device_token_topic" env-default:"device_tokens"`
	NotificationsTopic string   `yaml:"notifications_topic" env-default:"device_notifications"`
}

type BackendConfig struct {
	BaseURL string        `yaml:"base_url" env:"BACKEND_URL"`
	Timeout time.Duration `yaml:"timeout" env-default:"5s"`
}

type DedupConfig struct {
	TTL time.Duration `yaml:"ttl" env-default:"5m"`
}

type CacheConfig struct {
	Size int           `yaml:"size" env-default:"256"`
	TTL  time.Duration `yaml:"ttl" env-default:"10m"`
}

type RefreshConfig struct {
	Interval time.Duration `yaml:"interval" env-default:"15s"`
	ShopIDs  []string      `yaml:"shop_ids" env:"REFRESH_SHOP_IDS" env-separator:","`
}

// SurfaceConfig selects where presentations are rendered: "kafka" publishes them to
// the notifications topic, "log" writes them to the agent log.
type SurfaceConfig struct {
	Kind string `yaml:"kind" env:"SURFACE_KIND" env-default:"log"`
}

func InitConfig() Config {
	configPath := getConfigPath()

	if configPath == "" {
		panic("config path is not set")
	}

	cfg, err := Load(configPath)
	if err != nil {
		panic(err.Error())
	}

	return cfg
}

func Load(configPath string) (Config, error) {
	var cfg Config

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	return cfg, nil
}

func getConfigPath() string {
	var path string

	flag.StringVar(&path, "config", "", "path to config file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	return path
}
