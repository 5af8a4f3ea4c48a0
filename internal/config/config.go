package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/ff-flow-nft/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// URIConfig holds URI resolver configuration
type URIConfig struct {
	IPFSGateways    []string `mapstructure:"ipfs_gateways"`
	ArweaveGateways []string `mapstructure:"arweave_gateways"`
	ProbeGateways   bool     `mapstructure:"probe_gateways"`
}

// NetworkConfig holds per-network overrides
type NetworkConfig struct {
	RPCURL string `mapstructure:"rpc_url"`
}

// ScanConfig holds the owned-token discovery configuration
type ScanConfig struct {
	MaxConsecutiveMisses int           `mapstructure:"max_consecutive_misses"`
	MaxTokenScan         uint64        `mapstructure:"max_token_scan"`
	CallTimeout          time.Duration `mapstructure:"call_timeout"`
	Concurrency          int           `mapstructure:"concurrency"`
	MetadataConcurrency  int           `mapstructure:"metadata_concurrency"`
	RequestsPerSecond    float64       `mapstructure:"requests_per_second"` // 0 disables the RPC rate limit
	Burst                int           `mapstructure:"burst"`
}

// HTTPConfig holds the outbound HTTP client configuration
type HTTPConfig struct {
	Timeout             time.Duration `mapstructure:"timeout"`
	RetryInitial        time.Duration `mapstructure:"retry_initial"`
	RetryMaxInterval    time.Duration `mapstructure:"retry_max_interval"`
	RetryMaxElapsedTime time.Duration `mapstructure:"retry_max_elapsed_time"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// ChainConfig holds the settings shared by every binary that reads the chain
type ChainConfig struct {
	Network         domain.Network           `mapstructure:"network"`
	Networks        map[string]NetworkConfig `mapstructure:"networks"`
	DeploymentsPath string                   `mapstructure:"deployments_path"`
	URI             URIConfig                `mapstructure:"uri"`
	Scan            ScanConfig               `mapstructure:"scan"`
	HTTP            HTTPConfig               `mapstructure:"http"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig  `mapstructure:",squash"`
	ChainConfig `mapstructure:",squash"`
	Server      ServerConfig `mapstructure:"server"`
}

// CLIConfig holds configuration for nftctl
type CLIConfig struct {
	BaseConfig  `mapstructure:",squash"`
	ChainConfig `mapstructure:",squash"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	setChainDefaults(v)
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 120)
	v.SetDefault("server.idle_timeout", 120)

	if err := readInConfig(v); err != nil {
		return nil, err
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.ChainConfig.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadCLIConfig loads configuration for nftctl
func LoadCLIConfig(configFile string, envPath string) (*CLIConfig, error) {
	v := configureViper("nftctl", configFile, envPath)

	setChainDefaults(v)

	if err := readInConfig(v); err != nil {
		return nil, err
	}

	var cfg CLIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.ChainConfig.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the chain settings
func (c *ChainConfig) Validate() error {
	if _, err := domain.LookupNetwork(c.Network); err != nil {
		return err
	}
	if c.DeploymentsPath == "" {
		return errors.New("deployments_path is required")
	}
	if c.Scan.MaxConsecutiveMisses <= 0 {
		return errors.New("scan.max_consecutive_misses must be positive")
	}
	if c.Scan.Concurrency <= 0 {
		return errors.New("scan.concurrency must be positive")
	}
	if c.Scan.RequestsPerSecond < 0 {
		return errors.New("scan.requests_per_second must not be negative")
	}
	return nil
}

// NetworkInfo returns the network info with any configured RPC override applied
func (c *ChainConfig) NetworkInfo(network domain.Network) (domain.NetworkInfo, error) {
	info, err := domain.LookupNetwork(network)
	if err != nil {
		return domain.NetworkInfo{}, err
	}
	// viper lower-cases map keys
	if override, ok := c.Networks[strings.ToLower(string(network))]; ok && override.RPCURL != "" {
		info.RPCURL = override.RPCURL
	}
	return info, nil
}

func setChainDefaults(v *viper.Viper) {
	v.SetDefault("network", string(domain.NetworkFlowTestnet))
	v.SetDefault("deployments_path", "deployed-addresses.json")
	v.SetDefault("uri.ipfs_gateways", []string{domain.DEFAULT_IPFS_GATEWAY})
	v.SetDefault("uri.arweave_gateways", []string{domain.DEFAULT_ARWEAVE_GATEWAY})
	v.SetDefault("uri.probe_gateways", false)
	v.SetDefault("scan.max_consecutive_misses", 25)
	v.SetDefault("scan.max_token_scan", 2000)
	v.SetDefault("scan.call_timeout", "10s")
	v.SetDefault("scan.concurrency", 4)
	v.SetDefault("scan.metadata_concurrency", 8)
	v.SetDefault("scan.requests_per_second", 0)
	v.SetDefault("scan.burst", 10)
	v.SetDefault("http.timeout", "15s")
	v.SetDefault("http.retry_initial", "2s")
	v.SetDefault("http.retry_max_interval", "30s")
	v.SetDefault("http.retry_max_elapsed_time", "1m")
}

// readInConfig reads the config file; a missing file falls back to env variables
func readInConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("FF_FLOW_NFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		"network",
		"deployments_path",
		// Networks
		"networks.evmflowmainnet.rpc_url",
		"networks.evmflowtestnet.rpc_url",
		"networks.hardhat.rpc_url",
		// URI
		"uri.ipfs_gateways",
		"uri.arweave_gateways",
		"uri.probe_gateways",
		// Scan
		"scan.max_consecutive_misses",
		"scan.max_token_scan",
		"scan.call_timeout",
		"scan.concurrency",
		"scan.metadata_concurrency",
		"scan.requests_per_second",
		"scan.burst",
		// HTTP
		"http.timeout",
		"http.retry_initial",
		"http.retry_max_interval",
		"http.retry_max_elapsed_time",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // later files override earlier ones
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
