package models

// Config holds all application configuration
type Config struct {
	App    AppConfig
	Server ServerConfig
	Logger LoggerConfig
	JWT    JWTConfig
	OTP    OTPConfig
	SMS    SMSConfig
	Redis  RedisConfig
	NSQ    NSQConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name        string `json:"name" mapstructure:"name"`
	Environment string `json:"environment" mapstructure:"environment"`
	Debug       bool   `json:"debug" mapstructure:"debug"`
	Version     string `json:"version" mapstructure:"version"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string `json:"host" mapstructure:"host"`
	Port            int    `json:"port" mapstructure:"port"`
	ShutdownTimeout int    `json:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string `json:"level" mapstructure:"level"`
	FilePath string `json:"file_path" mapstructure:"file_path"`
}

// JWTConfig holds JWT token configuration
type JWTConfig struct {
	Secret     string `json:"secret" mapstructure:"secret"`
	Expiration int    `json:"expiration" mapstructure:"expiration"` // minutes
	Issuer     string `json:"issuer" mapstructure:"issuer"`
}

// OTPConfig holds OTP issuance configuration
type OTPConfig struct {
	// TTLSeconds is how long an issued code stays valid. Zero disables expiry.
	TTLSeconds int `json:"ttl_seconds" mapstructure:"ttl_seconds"`
	// Store selects the OTP store backend: "memory" (default) or "redis".
	Store string `json:"store" mapstructure:"store"`
}

// SMSConfig holds outbound SMS delivery configuration
type SMSConfig struct {
	Enabled        bool   `json:"enabled" mapstructure:"enabled"`
	APIKey         string `json:"api_key" mapstructure:"api_key"`
	BaseURL        string `json:"base_url" mapstructure:"base_url"`
	TimeoutSeconds int    `json:"timeout_seconds" mapstructure:"timeout_seconds"`
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string `json:"host" mapstructure:"host"`
	Port     int    `json:"port" mapstructure:"port"`
	Password string `json:"password" mapstructure:"password"`
	DB       int    `json:"db" mapstructure:"db"`
	PoolSize int    `json:"pool_size" mapstructure:"pool_size"`
}

// NSQConfig holds NSQ producer configuration
type NSQConfig struct {
	// Address of the nsqd daemon. Empty disables event publishing.
	Address string `json:"address" mapstructure:"address"`
}
