package config

import "time"

type HTTPConfig struct {
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port int    `env:"PORT" envDefault:"8080"`
	// ThrottleLimit bounds concurrent in-flight requests process-wide.
	ThrottleLimit int `env:"THROTTLE_LIMIT" envDefault:"100"`
}

type PokeAPIConfig struct {
	BaseURL string        `env:"BASE_URL" envDefault:"https://pokeapi.co/api/v2/pokemon-species"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
	// Language selects which flavor-text entry becomes the description.
	Language string `env:"LANGUAGE" envDefault:"en"`
}

type FunTranslationsConfig struct {
	BaseURL        string        `env:"BASE_URL" envDefault:"https://api.funtranslations.com/translate"`
	Timeout        time.Duration `env:"TIMEOUT" envDefault:"10s"`
	MaxAttempts    int           `env:"MAX_ATTEMPTS" envDefault:"3"`
	RetryBaseDelay time.Duration `env:"RETRY_BASE_DELAY" envDefault:"200ms"`
	RetryMaxDelay  time.Duration `env:"RETRY_MAX_DELAY" envDefault:"5s"`
}

type CacheConfig struct {
	// Driver is "memory" or "redis".
	Driver     string        `env:"DRIVER" envDefault:"memory"`
	TTL        time.Duration `env:"TTL" envDefault:"1h"`
	MaxEntries int           `env:"MAX_ENTRIES" envDefault:"100"`
}

type RedisConfig struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

type KafkaConfig struct {
	Enabled     bool     `env:"ENABLED" envDefault:"false"`
	Brokers     []string `env:"BROKERS" envSeparator:","`
	ClientID    string   `env:"CLIENT_ID" envDefault:"pokedex-api"`
	TopicPrefix string   `env:"TOPIC_PREFIX" envDefault:"pokedex."`
}

// ObservabilityConfig Observability / telemetry configuration
type ObservabilityConfig struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"pokedex-api"`
	ServiceEnv  string `env:"SERVICE_ENV" envDefault:"Development"`
	// e.g. "http://otel-collector:4317"
	OtelEndpoint string `env:"ENDPOINT"`
	// When false, telemetry setup is skipped entirely (no collector needed).
	Enabled bool `env:"ENABLED" envDefault:"false"`
}

type Config struct {
	Environment string `env:"APP_ENV" envDefault:"Development"`

	HTTP            HTTPConfig            `envPrefix:"HTTP_"`
	PokeAPI         PokeAPIConfig         `envPrefix:"POKEAPI_"`
	FunTranslations FunTranslationsConfig `envPrefix:"FUNTRANSLATIONS_"`
	Cache           CacheConfig           `envPrefix:"CACHE_"`
	Redis           RedisConfig           `envPrefix:"REDIS_"`
	Kafka           KafkaConfig           `envPrefix:"KAFKA_"`
	Observability   ObservabilityConfig   `envPrefix:"OTEL_"`
}
