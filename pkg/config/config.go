package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config represents the ticket gateway configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Ethereum EthereumConfig `mapstructure:"ethereum"`
	Pricing  PricingConfig  `mapstructure:"pricing"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Shutdown ShutdownConfig `mapstructure:"shutdown"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// EthereumConfig contains wallet provider and contract settings
type EthereumConfig struct {
	RPCURL           string        `mapstructure:"rpc_url"`
	ChainID          int64         `mapstructure:"chain_id"`
	TicketContract   string        `mapstructure:"ticket_contract"`
	SignerPrivateKey string        `mapstructure:"signer_private_key"`
	GasLimit         uint64        `mapstructure:"gas_limit"`
	MaxGasPrice      string        `mapstructure:"max_gas_price"`
	MintTimeout      time.Duration `mapstructure:"mint_timeout"`
	CallTimeout      time.Duration `mapstructure:"call_timeout"`
}

// PricingConfig contains display-currency settings.
// The display-unit to wei conversion itself is a versioned constant in
// pkg/ticket; only presentation metadata lives here.
type PricingConfig struct {
	DisplayCurrency string `mapstructure:"display_currency"`
}

// StorageConfig contains local durable store settings
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// ShutdownConfig contains graceful shutdown settings
type ShutdownConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "15s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "60s")
	viper.SetDefault("server.shutdown_timeout", "30s")

	// Ethereum defaults
	viper.SetDefault("ethereum.gas_limit", 300000)
	viper.SetDefault("ethereum.mint_timeout", "2m")
	viper.SetDefault("ethereum.call_timeout", "15s")

	// Pricing defaults
	viper.SetDefault("pricing.display_currency", "USD")

	// Storage defaults
	viper.SetDefault("storage.path", "data/ticketchain")

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.output_path", "stdout")

	// Shutdown defaults
	viper.SetDefault("shutdown.timeout", "30s")
}

func validate(config *Config) error {
	if config.Ethereum.RPCURL == "" {
		return fmt.Errorf("ethereum.rpc_url is required")
	}
	if config.Ethereum.ChainID == 0 {
		return fmt.Errorf("ethereum.chain_id is required")
	}
	if config.Ethereum.TicketContract == "" {
		return fmt.Errorf("ethereum.ticket_contract is required")
	}
	if config.Ethereum.SignerPrivateKey == "" {
		return fmt.Errorf("ethereum.signer_private_key is required")
	}
	return nil
}
