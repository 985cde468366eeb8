package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "STOREFRONT_CONFIG_FILE"

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

type mongo struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type storage struct {
	Driver string `mapstructure:"driver"`
	Mongo  mongo  `mapstructure:"mongo"`
	SQLDB  string `mapstructure:"sql_db"`
}

type auth struct {
	JWTSecret            string        `mapstructure:"jwt_secret"`
	TokenTTL             time.Duration `mapstructure:"token_ttl"`
	BootstrapAdminMobile string        `mapstructure:"bootstrap_admin_mobile"`
}

type inventory struct {
	LowStockThreshold int `mapstructure:"low_stock_threshold"`
}

type checkout struct {
	WhatsAppNumber string `mapstructure:"whatsapp_number"`
	ShopBaseURL    string `mapstructure:"shop_base_url"`
}

type tlsFiles struct {
	CA   string `mapstructure:"ca"`
	Cert string `mapstructure:"cert"`
	Key  string `mapstructure:"key"`
}

func (t tlsFiles) Enabled() bool {
	return t.CA != ""
}

type topics struct {
	ProductEvents string `mapstructure:"product_events"`
}

type broker struct {
	Enabled            bool     `mapstructure:"enabled"`
	SeedBrokers        []string `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string `mapstructure:"schema_registry_urls"`
	TLS                tlsFiles `mapstructure:"tls"`
	Topics             topics   `mapstructure:"topics"`
}

type Config struct {
	LogLevel       slog.Level `mapstructure:"log_level"`
	HTTPServerAddr string     `mapstructure:"http_server_addr"`
	Storage        storage    `mapstructure:"storage"`
	Auth           auth       `mapstructure:"auth"`
	Inventory      inventory  `mapstructure:"inventory"`
	Checkout       checkout   `mapstructure:"checkout"`
	Broker         broker     `mapstructure:"broker"`
}

func Load() Config {
	cfg, err := LoadFile(getConfigFilepath())
	if err != nil {
		die(err)
	}
	return cfg
}

// LoadFile reads and validates the config at path. Unknown keys are
// rejected.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, err
	}

	var cfg Config
	err := v.UnmarshalExact(&cfg, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_server_addr", ":8000")
	v.SetDefault("storage.driver", DriverMongo)
	v.SetDefault("storage.mongo.database", "storefront")
	v.SetDefault("auth.token_ttl", "24h")
	v.SetDefault("inventory.low_stock_threshold", 5)
	v.SetDefault("broker.topics.product_events", "product_events")
}

func (c Config) validate() error {
	var errs []error

	switch c.Storage.Driver {
	case DriverMongo:
		if c.Storage.Mongo.URI == "" {
			errs = append(errs, errors.New("storage.mongo.uri: required"))
		}
	case DriverPostgres:
		if c.Storage.SQLDB == "" {
			errs = append(errs, errors.New("storage.sql_db: required"))
		}
	default:
		errs = append(errs, fmt.Errorf(
			"storage.driver: unknown driver %q", c.Storage.Driver,
		))
	}

	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("auth.jwt_secret: required"))
	}

	if c.Broker.Enabled {
		if len(c.Broker.SeedBrokers) == 0 {
			errs = append(errs, errors.New("broker.seed_brokers: required"))
		}
		if len(c.Broker.SchemaRegistryURLs) == 0 {
			errs = append(errs, errors.New("broker.schema_registry_urls: required"))
		}
	}

	return errors.Join(errs...)
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q

	Storage:
	Driver=%q
	MongoURI=%q
	MongoDatabase=%q
	SQLDB=%q

	Auth:
	JWTSecret=%q
	TokenTTL=%q
	BootstrapAdminMobile=%q

	Inventory:
	LowStockThreshold=%d

	Checkout:
	WhatsAppNumber=%q
	ShopBaseURL=%q

	BrokerConfig:
	Enabled=%t
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	TLS=%t
	Topics:
		ProductEvents=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.Storage.Driver,
		mask(c.Storage.Mongo.URI),
		c.Storage.Mongo.Database,
		mask(c.Storage.SQLDB),
		mask(c.Auth.JWTSecret),
		c.Auth.TokenTTL,
		c.Auth.BootstrapAdminMobile,
		c.Inventory.LowStockThreshold,
		c.Checkout.WhatsAppNumber,
		c.Checkout.ShopBaseURL,
		c.Broker.Enabled,
		c.Broker.SeedBrokers,
		c.Broker.SchemaRegistryURLs,
		c.Broker.TLS.Enabled(),
		c.Broker.Topics.ProductEvents,
	)
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return "***"
}
