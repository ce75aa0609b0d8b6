package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	OpenData OpenDataConfig
	Data     DataConfig
	Worker   WorkerConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	TrendsCacheTTL time.Duration
	StatusCacheTTL time.Duration
}

type OpenDataConfig struct {
	ParkingSignsURL      string
	MeterZonesURL        string
	ViolationsURL        string
	AppToken             string
	RequestTimeout       time.Duration
	MaxRecordsPerRequest int
	FallbackLimit        int
}

type DataConfig struct {
	FallbackToSample  bool
	SampleSignCount   int
	MeterSearchRadius float64
	DefaultSignRadius float64
}

type WorkerConfig struct {
	Enabled         bool
	RefreshInterval time.Duration
	ViolationsLimit int
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			TrendsCacheTTL: time.Duration(viper.GetInt("TRENDS_CACHE_TTL")) * time.Second,
			StatusCacheTTL: time.Duration(viper.GetInt("STATUS_CACHE_TTL")) * time.Second,
		},
		OpenData: OpenDataConfig{
			ParkingSignsURL:      viper.GetString("PARKING_SIGNS_URL"),
			MeterZonesURL:        viper.GetString("METER_ZONES_URL"),
			ViolationsURL:        viper.GetString("VIOLATIONS_URL"),
			AppToken:             viper.GetString("NYC_OPEN_DATA_API_KEY"),
			RequestTimeout:       time.Duration(viper.GetInt("OPENDATA_REQUEST_TIMEOUT")) * time.Second,
			MaxRecordsPerRequest: viper.GetInt("MAX_RECORDS_PER_REQUEST"),
			FallbackLimit:        viper.GetInt("OPENDATA_FALLBACK_LIMIT"),
		},
		Data: DataConfig{
			FallbackToSample:  viper.GetBool("DATA_FALLBACK_TO_SAMPLE"),
			SampleSignCount:   viper.GetInt("SAMPLE_SIGN_COUNT"),
			MeterSearchRadius: viper.GetFloat64("METER_SEARCH_RADIUS"),
			DefaultSignRadius: viper.GetFloat64("SEARCH_RADIUS_METERS"),
		},
		Worker: WorkerConfig{
			Enabled:         viper.GetBool("WORKER_ENABLED"),
			RefreshInterval: time.Duration(viper.GetInt("WORKER_REFRESH_INTERVAL")) * time.Second,
			ViolationsLimit: viper.GetInt("WORKER_VIOLATIONS_LIMIT"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.OpenData.ParkingSignsURL == "" {
		cfg.OpenData.ParkingSignsURL = "https://data.cityofnewyork.us/resource/nfid-uabd.json"
	}
	if cfg.OpenData.MeterZonesURL == "" {
		cfg.OpenData.MeterZonesURL = "https://data.cityofnewyork.us/resource/693u-uax6.json"
	}
	if cfg.OpenData.ViolationsURL == "" {
		cfg.OpenData.ViolationsURL = "https://data.cityofnewyork.us/resource/nc67-uf89.json"
	}
	if cfg.OpenData.RequestTimeout == 0 {
		cfg.OpenData.RequestTimeout = 30 * time.Second
	}
	if cfg.OpenData.MaxRecordsPerRequest == 0 {
		cfg.OpenData.MaxRecordsPerRequest = 50000
	}
	if cfg.OpenData.FallbackLimit == 0 {
		cfg.OpenData.FallbackLimit = 1000
	}
	if cfg.Data.SampleSignCount == 0 {
		cfg.Data.SampleSignCount = 1000
	}
	if cfg.Data.MeterSearchRadius == 0 {
		cfg.Data.MeterSearchRadius = 500
	}
	if cfg.Data.DefaultSignRadius == 0 {
		cfg.Data.DefaultSignRadius = 100
	}
	if cfg.Cache.TrendsCacheTTL == 0 {
		cfg.Cache.TrendsCacheTTL = time.Hour
	}
	if cfg.Cache.StatusCacheTTL == 0 {
		cfg.Cache.StatusCacheTTL = time.Minute
	}
	if cfg.Worker.RefreshInterval == 0 {
		cfg.Worker.RefreshInterval = 6 * time.Hour
	}
	if cfg.Worker.ViolationsLimit == 0 {
		cfg.Worker.ViolationsLimit = 10000
	}
	if !viper.IsSet("DATA_FALLBACK_TO_SAMPLE") {
		cfg.Data.FallbackToSample = true
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
