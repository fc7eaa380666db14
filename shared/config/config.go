package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	HTTP  HTTP  `yaml:"http"`
	CORS  CORS  `yaml:"cors"`
	Media Media `yaml:"media"`
	Log   Log   `yaml:"log"`

	// Upper bound for a whole request body, enforced before decoding
	MaxRequestSize int64 `yaml:"max_request_size" validate:"gt=0"`
}

type HTTP struct {
	Addr           string        `yaml:"addr" validate:"required"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type Media struct {
	Path string `yaml:"path" validate:"required"`
	// Width*height*4 of an upload may not exceed this before decoding
	MaxDecodedImageSize int64     `yaml:"max_decoded_image_size" validate:"gte=0"`
	Thumbnail           Thumbnail `yaml:"thumbnail"`
}

type Thumbnail struct {
	Size        int `yaml:"size" validate:"gt=0"`
	JPEGQuality int `yaml:"jpeg_quality" validate:"min=1,max=100"`
}

type Log struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

type Private struct {
	Pg Pg `yaml:"pg"`
}

type Pg struct {
	Host         string `yaml:"host" validate:"required"`
	Port         int    `yaml:"port" validate:"required"`
	User         string `yaml:"user" validate:"required"`
	Password     string `yaml:"password"`
	Dbname       string `yaml:"dbname" validate:"required"`
	MaxOpenConns int    `yaml:"max_open_conns"`
}

// Defaults returns the values used for keys absent from public.yaml.
func Defaults() Public {
	return Public{
		HTTP: HTTP{
			Addr:           ":3000",
			ReadTimeout:    30 * time.Second,
			WriteTimeout:   30 * time.Second,
			RequestTimeout: 30 * time.Second,
		},
		Media: Media{
			Path:                "media",
			MaxDecodedImageSize: 256 << 20,
			Thumbnail:           Thumbnail{Size: 256, JPEGQuality: 100},
		},
		Log:            Log{Level: "info"},
		MaxRequestSize: 5 << 20,
	}
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file: " + configPath)
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic(fmt.Sprintf("can't unmarshal config file %s: %v", configPath, err))
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder and panics
// if either is missing or invalid.
func MustLoad(configFolder string) *Config {
	public := Defaults()
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{Public: public, Private: private}
	if err := cfg.Validate(); err != nil {
		panic(err.Error())
	}
	return cfg
}

func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
