package xsuite

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/omeyang/qakit/pkg/web/xweberr"
)

// Format 定义配置文件格式。
type Format string

// 支持的配置格式。
const (
	// FormatYAML YAML 格式。
	FormatYAML Format = "yaml"

	// FormatJSON JSON 格式。
	FormatJSON Format = "json"
)

// EnvBrowser 覆盖 browser 字段的环境变量名。
const EnvBrowser = "QAKIT_BROWSER"

// defaultConfigYAML 内置默认值，文件中省略的键从这里取值。
const defaultConfigYAML = `
base_url: https://www.saucedemo.com
browser: chrome
headless: false
timeout: 10s
retry:
  max_retries: 3
  initial_delay: 1s
  multiplier: 2.0
  max_delay: 8s
`

// Load 从文件加载套件配置。
// 根据扩展名检测格式（.yaml/.yml/.json）。文件不存在时回退到
// 默认配置（原框架的行为：缺少配置文件不算错误）。
// 其他失败返回 *xweberr.ConfigError。
func Load(path string) (*Config, error) {
	if path == "" {
		cfg := Default()
		applyEnv(&cfg)
		return &cfg, nil
	}

	format, err := detectFormat(path)
	if err != nil {
		return nil, xweberr.NewConfig("", err)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := Default()
		applyEnv(&cfg)
		return &cfg, nil
	}
	if err != nil {
		return nil, xweberr.NewConfig("", fmt.Errorf("%w: %w", ErrLoadFailed, err))
	}

	return LoadBytes(data, format)
}

// LoadBytes 从字节数据加载套件配置，需要显式指定格式。
// 空数据返回默认配置。失败返回 *xweberr.ConfigError。
func LoadBytes(data []byte, format Format) (*Config, error) {
	parser, err := parserFor(format)
	if err != nil {
		return nil, xweberr.NewConfig("", err)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider([]byte(defaultConfigYAML)), yaml.Parser()); err != nil {
		return nil, xweberr.NewConfig("", fmt.Errorf("%w: %w", ErrParseFailed, err))
	}
	if len(data) > 0 {
		if err := k.Load(rawbytes.Provider(data), parser); err != nil {
			return nil, xweberr.NewConfig("", fmt.Errorf("%w: %w", ErrParseFailed, err))
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, xweberr.NewConfig("", fmt.Errorf("%w: %w", ErrParseFailed, err))
	}

	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv 应用环境变量覆盖。
func applyEnv(cfg *Config) {
	if browser := os.Getenv(EnvBrowser); browser != "" {
		cfg.Browser = browser
	}
}

func detectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func parserFor(format Format) (koanf.Parser, error) {
	switch format {
	case FormatYAML:
		return yaml.Parser(), nil
	case FormatJSON:
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
