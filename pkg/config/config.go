package config

import (
	"time"
)

type DB struct {
	Driver          string        `envconfig:"DRIVER" default:"postgres"`
	Url             string        `envconfig:"URL"`
	AutoMigrate     bool          `envconfig:"AUTO_MIGRATE" default:"true"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"25"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"1h"`
}

type Storage struct {
	UploadDir      string `envconfig:"UPLOAD_DIR" default:"./uploads"`
	MaxUploadBytes int64  `envconfig:"MAX_UPLOAD_BYTES" default:"10485760"`
}

type Redis struct {
	URL          string        `envconfig:"URL"`
	KeyPrefix    string        `envconfig:"KEY_PREFIX" default:"onboarding:"`
	PoolSize     int           `envconfig:"POOL_SIZE" default:"10"`
	DialTimeout  time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"3s"`
}

// Cache configures the submitted-request read cache.
// Driver is one of memory, redis or none.
type Cache struct {
	Driver string        `envconfig:"DRIVER" default:"memory"`
	TTL    time.Duration `envconfig:"TTL" default:"10m"`
}

// EventBus selects the transport for domain events.
// Driver is one of memory, redis or kafka; empty means memory.
type EventBus struct {
	Driver       string `envconfig:"DRIVER" default:"memory"`
	RedisURL     string `envconfig:"REDIS_URL"`
	Stream       string `envconfig:"STREAM" default:"onboarding:events"`
	Group        string `envconfig:"GROUP" default:"onboarding"`
	KafkaBrokers string `envconfig:"KAFKA_BROKERS"`
	KafkaTopic   string `envconfig:"KAFKA_TOPIC" default:"onboarding.events"`
	KafkaGroupID string `envconfig:"KAFKA_GROUP_ID" default:"onboarding"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[onboarding]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	DB        *DB        `envconfig:"DATABASE"`
	Storage   *Storage   `envconfig:"STORAGE"`
	Redis     *Redis     `envconfig:"REDIS"`
	Cache     *Cache     `envconfig:"CACHE"`
	EventBus  *EventBus  `envconfig:"EVENT_BUS"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
}
