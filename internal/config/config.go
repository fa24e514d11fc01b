package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/bambooloan/lending-indexer/internal/deployment"
	"github.com/bambooloan/lending-indexer/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	ConsumerName   string        `mapstructure:"consumer_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
	AckWait        time.Duration `mapstructure:"ack_wait"`
	MaxDeliver     int           `mapstructure:"max_deliver"`
}

// AssetConfig describes one listable asset of the deployment
type AssetConfig struct {
	DerivativeAddress  string `mapstructure:"derivative_address"`
	Name               string `mapstructure:"name"`
	Symbol             string `mapstructure:"symbol"`
	Decimals           int32  `mapstructure:"decimals"`
	DerivativeDecimals int32  `mapstructure:"derivative_decimals"`
	// ReserveFactor is a decimal string in [0,1]
	ReserveFactor string `mapstructure:"reserve_factor"`
}

// DeploymentConfig holds the per-network contract set and asset table
type DeploymentConfig struct {
	Network            string                 `mapstructure:"network"`
	ProtocolAddress    string                 `mapstructure:"protocol_address"`
	PriceOracleAddress string                 `mapstructure:"price_oracle_address"`
	LiquidationAddress string                 `mapstructure:"liquidation_address"`
	Name               string                 `mapstructure:"name"`
	Slug               string                 `mapstructure:"slug"`
	SchemaVersion      string                 `mapstructure:"schema_version"`
	SubgraphVersion    string                 `mapstructure:"subgraph_version"`
	MethodologyVersion string                 `mapstructure:"methodology_version"`
	Assets             map[string]AssetConfig `mapstructure:"assets"`
}

// IndexerConfig holds configuration for the lending indexer
type IndexerConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig   `mapstructure:"database"`
	NATS       NATSConfig       `mapstructure:"nats"`
	Deployment DeploymentConfig `mapstructure:"deployment"`
}

// LoadIndexerConfig loads configuration for the lending indexer
func LoadIndexerConfig(configFile string, envPath string) (*IndexerConfig, error) {
	v := configureViper("indexer", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "CHAIN_EVENTS")
	v.SetDefault("nats.consumer_name", "lending-indexer")
	v.SetDefault("nats.ack_wait", "30s")
	v.SetDefault("nats.max_deliver", 3)
	v.SetDefault("deployment.network", string(domain.NetworkMainnet))
	v.SetDefault("deployment.name", "Bamboo Loan")
	v.SetDefault("deployment.slug", "bamboo-loan")
	v.SetDefault("deployment.schema_version", "1.0.0")
	v.SetDefault("deployment.subgraph_version", "1.0.0")
	v.SetDefault("deployment.methodology_version", "1.0.0")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config IndexerConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if !domain.IsValidNetwork(domain.Network(config.Deployment.Network)) {
		return nil, fmt.Errorf("unknown network: %s", config.Deployment.Network)
	}
	if config.Deployment.ProtocolAddress == "" {
		return nil, errors.New("deployment.protocol_address is required")
	}

	return &config, nil
}

// Deployment converts the loaded deployment section into the immutable
// runtime deployment table
func (c *DeploymentConfig) Deployment() (*deployment.Deployment, error) {
	assets := make(map[string]deployment.AssetListing, len(c.Assets))
	for asset, ac := range c.Assets {
		reserveFactor := decimal.Zero
		if ac.ReserveFactor != "" {
			var err error
			reserveFactor, err = decimal.NewFromString(ac.ReserveFactor)
			if err != nil {
				return nil, fmt.Errorf("invalid reserve factor for asset %s: %w", asset, err)
			}
		}
		assets[asset] = deployment.AssetListing{
			DerivativeAddress:  ac.DerivativeAddress,
			Name:               ac.Name,
			Symbol:             ac.Symbol,
			Decimals:           ac.Decimals,
			DerivativeDecimals: ac.DerivativeDecimals,
			ReserveFactor:      reserveFactor,
		}
	}

	return &deployment.Deployment{
		Network:            domain.Network(c.Network),
		ProtocolAddress:    c.ProtocolAddress,
		PriceOracleAddress: c.PriceOracleAddress,
		LiquidationAddress: c.LiquidationAddress,
		Name:               c.Name,
		Slug:               c.Slug,
		SchemaVersion:      c.SchemaVersion,
		SubgraphVersion:    c.SubgraphVersion,
		MethodologyVersion: c.MethodologyVersion,
		Assets:             assets,
	}, nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("LENDING_INDEXER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.consumer_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.ack_wait",
		"nats.max_deliver",
		// Deployment
		"deployment.network",
		"deployment.protocol_address",
		"deployment.price_oracle_address",
		"deployment.liquidation_address",
		"deployment.name",
		"deployment.slug",
		"deployment.schema_version",
		"deployment.subgraph_version",
		"deployment.methodology_version",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
