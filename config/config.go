package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// DefaultLocation сервис живёт по иркутскому времени (UTC+8)
var DefaultLocation = time.FixedZone("UTC+8", 8*60*60)

// ErrNoSecret без секрета сервер не запускается
var ErrNoSecret = errors.New("secret key is not found in env")

// Config настройки сервиса, собираются один раз при старте и передаются явно
type Config struct {
	Secret    string         //Значение заголовка Token-Self
	Addr      string         //Адрес HTTP сервера
	ImagesDir string         //Куда складывать картинки
	FontPath  string         //TrueType шрифт для картинок
	Location  *time.Location //Зона для "сегодня" и "завтра"
	Parser    ParserConfig
}

// Load подхватить .env (если есть) и собрать Config из окружения
func Load(files ...string) (*Config, error) {
	return load(true, files)
}

// LoadLocal то же, что Load, но без SECRET_KEY: для команд, которые не поднимают сервер
func LoadLocal(files ...string) (*Config, error) {
	return load(false, files)
}

func load(requireSecret bool, files []string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := &Config{
		Secret:    os.Getenv("SECRET_KEY"),
		Addr:      getOr("ADDR", ":5000"),
		ImagesDir: getOr("IMAGES_DIR", "images"),
		FontPath:  getOr("FONT_PATH", "arialmt.ttf"),
		Location:  DefaultLocation,
	}
	if requireSecret && cfg.Secret == "" {
		return nil, ErrNoSecret
	}

	if tz := os.Getenv("SCHEDULE_TZ"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("invalid SCHEDULE_TZ: %w", err)
		}
		cfg.Location = loc
	}

	if raw := os.Getenv("RASP_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid RASP_TIMEOUT: %w", err)
		}
		cfg.Parser.Timeout = timeout
	}

	cfg.Parser.Init()
	return cfg, nil
}

func getOr(key, or string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return or
}
