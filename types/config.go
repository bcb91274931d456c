package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose bool         `mapstructure:"verbose"`
	Config  string       `mapstructure:"config"`
	Server  ServerConfig `mapstructure:"server" validate:"required"`
	Data    DataConfig   `mapstructure:"data" validate:"required"`
}

// ServerConfig holds the HTTP listener settings
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port" validate:"required,min=1,max=65535"`
}

// DataConfig holds data storage configuration
type DataConfig struct {
	File string `mapstructure:"file" validate:"required"`
}
