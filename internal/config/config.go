package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type AppConf struct {
	Env            string `mapstructure:"env"`
	Port           int    `mapstructure:"port"`
	ReadTimeout    int    `mapstructure:"read_timeout_seconds"`
	WriteTimeout   int    `mapstructure:"write_timeout_seconds"`
	ShutdownSecond int    `mapstructure:"shutdown_seconds"`
}

type MongoConf struct {
	URI            string `mapstructure:"uri"`
	Database       string `mapstructure:"database"`
	ConnectSeconds int    `mapstructure:"connect_timeout_seconds"`
}

type JWTConf struct {
	Secret   string `mapstructure:"secret"`
	TTLHours int    `mapstructure:"ttl_hours"`
}

type StripeConf struct {
	SecretKey string `mapstructure:"secret_key"`
}

type Config struct {
	App    AppConf    `mapstructure:"app"`
	Mongo  MongoConf  `mapstructure:"mongodb"`
	JWT    JWTConf    `mapstructure:"jwt"`
	Stripe StripeConf `mapstructure:"stripe"`

	// derived
	ShutdownTimeout time.Duration
	ConnectTimeout  time.Duration
	TokenTTL        time.Duration
}

// Load reads the yaml config file and applies environment overrides.
// A missing .env file is not an error; deployments use real env vars.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(path)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if s := v.GetString("PORT"); s != "" {
		cfg.App.Port = v.GetInt("PORT")
	}
	if s := v.GetString("MONGO_URI"); s != "" {
		cfg.Mongo.URI = s
	}
	if s := v.GetString("MONGO_DB"); s != "" {
		cfg.Mongo.Database = s
	}
	if s := v.GetString("ACCESS_TOKEN_SECRET"); s != "" {
		cfg.JWT.Secret = s
	}
	if s := v.GetString("STRIPE_SECRET_KEY"); s != "" {
		cfg.Stripe.SecretKey = s
	}

	if cfg.App.Port == 0 {
		cfg.App.Port = 5000
	}
	if cfg.App.ReadTimeout == 0 {
		cfg.App.ReadTimeout = 30
	}
	if cfg.App.WriteTimeout == 0 {
		cfg.App.WriteTimeout = 30
	}
	if cfg.App.ShutdownSecond == 0 {
		cfg.App.ShutdownSecond = 15
	}
	if cfg.Mongo.ConnectSeconds == 0 {
		cfg.Mongo.ConnectSeconds = 15
	}
	if cfg.JWT.TTLHours == 0 {
		cfg.JWT.TTLHours = 2
	}
	cfg.ShutdownTimeout = time.Duration(cfg.App.ShutdownSecond) * time.Second
	cfg.ConnectTimeout = time.Duration(cfg.Mongo.ConnectSeconds) * time.Second
	cfg.TokenTTL = time.Duration(cfg.JWT.TTLHours) * time.Hour
	return &cfg, nil
}
