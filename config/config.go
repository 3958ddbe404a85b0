package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Booking  BookingConfig  `yaml:"booking"`
}

type HTTPConfig struct {
	Address   string `yaml:"address"`
	StaticDir string `yaml:"static_dir"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	TicketsTopic       string   `yaml:"tickets_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type BookingConfig struct {
	// Mode selects between the persisting reservation flow and the
	// pure mock one that only issues a ticket. Valid values are
	// "persistent" and "mock".
	Mode           string `yaml:"mode"`
	HoldTTLSeconds int    `yaml:"hold_ttl_seconds"`
	CacheTTL       int    `yaml:"bookings_cache_ttl_seconds"`
	BcryptCost     int    `yaml:"bcrypt_cost"`
}

func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Database.applyEnv()

	if cfg.Booking.Mode == "" {
		cfg.Booking.Mode = "persistent"
	}
	if cfg.Booking.Mode != "persistent" && cfg.Booking.Mode != "mock" {
		return nil, fmt.Errorf("unknown booking mode %q", cfg.Booking.Mode)
	}

	return &cfg, nil
}

// applyEnv lets the process environment override database credentials,
// matching the DB_* variables the deployment already provides.
func (d *DatabaseConfig) applyEnv() {
	if v := os.Getenv("DB_HOST"); v != "" {
		d.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			d.Port = port
		}
	}
	if v := os.Getenv("DB_USER"); v != "" {
		d.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		d.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		d.Name = v
	}
}
