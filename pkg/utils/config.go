package utils

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Store    StoreConfig
	Pool     PoolConfig
	Auth     AuthConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
	DataDir string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	TTLMinutes int
}

// StoreConfig selects the persistence driver: "memory" or "postgres".
type StoreConfig struct {
	Driver string
}

type PoolConfig struct {
	MaxCapacity int
	Lanes       int
}

type AuthConfig struct {
	SessionExpiryHours int

	// Accounts registered with this email get the admin role.
	AdminEmail string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DATA_DIR", "data/")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("STORE_DRIVER", "memory")
	viper.SetDefault("REDIS_TTL_MINUTES", 60)
	viper.SetDefault("POOL_MAX_CAPACITY", 40)
	viper.SetDefault("POOL_LANES", 6)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)

	if _, err := os.Stat(".env"); err == nil {
		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
			DataDir: viper.GetString("DATA_DIR"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Redis: RedisConfig{
			Addr:       viper.GetString("REDIS_ADDR"),
			Password:   viper.GetString("REDIS_PASS"),
			DB:         viper.GetInt("REDIS_DB"),
			TTLMinutes: viper.GetInt("REDIS_TTL_MINUTES"),
		},
		Store: StoreConfig{
			Driver: viper.GetString("STORE_DRIVER"),
		},
		Pool: PoolConfig{
			MaxCapacity: viper.GetInt("POOL_MAX_CAPACITY"),
			Lanes:       viper.GetInt("POOL_LANES"),
		},
		Auth: AuthConfig{
			SessionExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
			AdminEmail:         viper.GetString("ADMIN_EMAIL"),
		},
	}

	return config, nil
}
