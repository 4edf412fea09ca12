// Package config - конфигурация сервера: флаги командной строки поверх
// необязательного YAML-файла. Флаги имеют приоритет над файлом.
package config

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"zappy-server/internal/domain"
)

// Config - полный набор параметров запуска
type Config struct {
	Port   int `yaml:"port"`
	WSPort int `yaml:"ws_port"` // 0 - HTTP/WebSocket-мост выключен

	Width     int      `yaml:"width"`
	Height    int      `yaml:"height"`
	Teams     []string `yaml:"teams"`
	ClientsNb int      `yaml:"clients_nb"`
	Freq      int      `yaml:"freq"`

	// Seed генератора случайностей; 0 - время запуска
	Seed int64 `yaml:"seed"`
}

func defaults() Config {
	return Config{
		Port:      4242,
		Width:     20,
		Height:    20,
		ClientsNb: 5,
		Freq:      100,
	}
}

// Load разбирает аргументы командной строки. Файл из -config (если задан)
// читается первым, явные флаги перекрывают его значения.
func Load(args []string) (*Config, error) {
	cfg := defaults()

	fs := flag.NewFlagSet("zappy-server", flag.ContinueOnError)
	configPath := fs.String("config", "", "путь к YAML-файлу конфигурации")
	port := fs.Int("p", cfg.Port, "TCP-порт сервера")
	wsPort := fs.Int("ws-port", cfg.WSPort, "порт HTTP/WebSocket-моста (0 - выключен)")
	width := fs.Int("x", cfg.Width, "ширина карты")
	height := fs.Int("y", cfg.Height, "высота карты")
	teams := fs.String("n", "", "имена команд через запятую")
	clientsNb := fs.Int("c", cfg.ClientsNb, "стартовые слоты на команду")
	freq := fs.Int("f", cfg.Freq, "тиков в секунду")
	seed := fs.Int64("seed", cfg.Seed, "сид генератора случайностей (0 - время)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *configPath != "" {
		if err := cfg.loadFile(*configPath); err != nil {
			return nil, err
		}
	}

	// Явно указанные флаги сильнее файла
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "p":
			cfg.Port = *port
		case "ws-port":
			cfg.WSPort = *wsPort
		case "x":
			cfg.Width = *width
		case "y":
			cfg.Height = *height
		case "n":
			cfg.Teams = splitTeams(*teams)
		case "c":
			cfg.ClientsNb = *clientsNb
		case "f":
			cfg.Freq = *freq
		case "seed":
			cfg.Seed = *seed
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: чтение %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: разбор %s: %w", path, err)
	}
	return nil
}

func splitTeams(s string) []string {
	var out []string
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}

// Validate проверяет границы всех параметров
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: некорректный порт %d", c.Port)
	}
	if c.WSPort < 0 || c.WSPort > 65535 {
		return fmt.Errorf("config: некорректный ws-порт %d", c.WSPort)
	}
	if c.WSPort != 0 && c.WSPort == c.Port {
		return fmt.Errorf("config: ws-порт совпадает с основным портом")
	}
	if c.Width < domain.MinMapSize || c.Width > domain.MaxMapSize {
		return fmt.Errorf("config: ширина %d вне диапазона %d..%d",
			c.Width, domain.MinMapSize, domain.MaxMapSize)
	}
	if c.Height < domain.MinMapSize || c.Height > domain.MaxMapSize {
		return fmt.Errorf("config: высота %d вне диапазона %d..%d",
			c.Height, domain.MinMapSize, domain.MaxMapSize)
	}
	if c.Freq < domain.MinFreq || c.Freq > domain.MaxFreq {
		return fmt.Errorf("config: частота %d вне диапазона %d..%d",
			c.Freq, domain.MinFreq, domain.MaxFreq)
	}
	if c.ClientsNb < 1 {
		return fmt.Errorf("config: clients_nb должен быть положительным")
	}
	if len(c.Teams) == 0 {
		return fmt.Errorf("config: не задано ни одной команды")
	}
	seen := make(map[string]bool)
	for _, name := range c.Teams {
		if name == "" {
			return fmt.Errorf("config: пустое имя команды")
		}
		if strings.EqualFold(name, "GRAPHIC") {
			return fmt.Errorf("config: имя команды %q зарезервировано", name)
		}
		if seen[name] {
			return fmt.Errorf("config: имя команды %q повторяется", name)
		}
		seen[name] = true
	}
	return nil
}
