package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultEnv         = "local"
	defaultLogLevel    = "info"
	defaultConfigDir   = ".timekeeper"
	defaultListenAddr  = "localhost:8954"
	defaultPeerTimeout = 15
)

type Config struct {
	Env            string `mapstructure:"app_env"`
	LogLevel       string `mapstructure:"log_level"`
	ConfigDir      string `mapstructure:"config_dir"`
	DatabasePath   string `mapstructure:"database_path"`
	MigrationsPath string `mapstructure:"migrations_path"`
	ListenAddr     string `mapstructure:"listen_addr"`
	PeerTimeout    int    `mapstructure:"peer_timeout_seconds"`
}

// MustLoad загружает конфигурацию клиента
func MustLoad() *Config {
	// Определяем путь к .env файлу (относительно места запуска)
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		// Пробуем найти .env в родительской директории
		envPath = "../.env"
	}

	// Загружаем .env файл если существует
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("Ошибка загрузки .env файла: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	// Устанавливаем значения по умолчанию
	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("MIGRATIONS_PATH", "migrations")
	viper.SetDefault("LISTEN_ADDR", defaultListenAddr)
	viper.SetDefault("PEER_TIMEOUT_SECONDS", defaultPeerTimeout)

	// Получаем домашнюю директорию пользователя
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	// Создаем директории если их нет
	if err := os.MkdirAll(configDir, 0700); err != nil {
		fmt.Printf("Ошибка создания директории конфигурации: %v\n", err)
	}

	databasePath := viper.GetString("DATABASE_PATH")
	if databasePath == "" {
		databasePath = filepath.Join(configDir, "timekeeper.db")
	}

	config := &Config{
		Env:            viper.GetString("APP_ENV"),
		LogLevel:       viper.GetString("LOG_LEVEL"),
		ConfigDir:      configDir,
		DatabasePath:   databasePath,
		MigrationsPath: viper.GetString("MIGRATIONS_PATH"),
		ListenAddr:     viper.GetString("LISTEN_ADDR"),
		PeerTimeout:    viper.GetInt("PEER_TIMEOUT_SECONDS"),
	}

	// Валидация конфигурации
	if err := config.validate(); err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}

	return config
}

func (c *Config) validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path не может быть пустым")
	}
	if c.PeerTimeout <= 0 {
		return fmt.Errorf("peer_timeout_seconds должен быть положительным")
	}
	return nil
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == ""
}
