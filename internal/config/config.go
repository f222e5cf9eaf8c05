package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"storefront.db"`
	RedisAddr   string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	Firebase Firebase `envPrefix:"FIREBASE_"`
	Storage  Storage  `envPrefix:"STORAGE_"`
}

type Firebase struct {
	ProjectID       string `env:"PROJECT_ID"`
	CredentialsFile string `env:"CREDENTIALS_FILE"`
}

type Storage struct {
	Bucket string `env:"BUCKET" envDefault:"product-images"`
	Folder string `env:"FOLDER" envDefault:"products"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
