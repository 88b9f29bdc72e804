package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

const (
	envPrefix = "UPNOTIF"

	keyURLs     = "urls"
	keyWebhook  = "slack_webhook"
	keyInterval = "interval_seconds"
	keyLogDir   = "log_dir"
	keyLogLevel = "log_level"

	// TestModeWebhook routes notifications to the console instead of Slack.
	TestModeWebhook = "test"

	defaultIntervalSeconds = 60
)

type Config struct {
	URLs         []string      // endpoints, in configured order
	SlackWebhook string        // webhook URL, or "test"
	TestMode     bool          // true when SlackWebhook == "test"
	Interval     time.Duration // time between steady-state cycles
	LogDir       string        // empty means console logging only
	LogLevel     zapcore.Level // minimum level logged, info by default
}

// FromEnv reads UPNOTIF_* variables from the process environment.
func FromEnv() (Config, error) {
	return Load(viper.New())
}

// Load reads configuration through v. Every validation problem is reported,
// not just the first one.
func Load(v *viper.Viper) (Config, error) {
	v.SetEnvPrefix(envPrefix)
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()
	v.SetDefault(keyInterval, strconv.Itoa(defaultIntervalSeconds))
	v.SetDefault(keyLogLevel, zapcore.InfoLevel.String())

	var errs error
	cfg := Config{LogDir: strings.TrimSpace(v.GetString(keyLogDir))}

	if !v.IsSet(keyURLs) {
		errs = multierr.Append(errs, errors.New("UPNOTIF_URLS environment variable is required"))
	} else {
		urls, err := parseURLs(v.GetString(keyURLs))
		errs = multierr.Append(errs, err)
		cfg.URLs = urls
	}

	if !v.IsSet(keyWebhook) {
		errs = multierr.Append(errs, errors.New("UPNOTIF_SLACK_WEBHOOK environment variable is required"))
	} else {
		raw := v.GetString(keyWebhook)
		hook := strings.TrimSpace(raw)
		cfg.SlackWebhook = hook
		// the sentinel must match exactly; " test " is treated as a URL
		cfg.TestMode = raw == TestModeWebhook
		if !cfg.TestMode {
			if err := validateURL(hook); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("invalid Slack webhook URL: %w", err))
			}
		}
	}

	interval, err := parseInterval(v.GetString(keyInterval))
	errs = multierr.Append(errs, err)
	cfg.Interval = interval

	level, err := parseLevel(v.GetString(keyLogLevel))
	errs = multierr.Append(errs, err)
	cfg.LogLevel = level

	if errs != nil {
		return Config{}, errs
	}
	return cfg, nil
}

func parseURLs(raw string) ([]string, error) {
	var urls []string
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			urls = append(urls, s)
		}
	}
	if len(urls) == 0 {
		return nil, errors.New("at least one URL must be provided in UPNOTIF_URLS")
	}

	var errs error
	for _, u := range urls {
		if err := validateURL(u); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("invalid URL %q: %w", u, err))
		}
	}
	return urls, errs
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" {
		return errors.New("missing scheme")
	}
	if u.Host == "" {
		return errors.New("missing host")
	}
	return nil
}

func parseInterval(raw string) (time.Duration, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("UPNOTIF_INTERVAL_SECONDS must be a valid number, got %q", raw)
	}
	if n == 0 {
		return 0, errors.New("UPNOTIF_INTERVAL_SECONDS must be greater than zero")
	}
	return time.Duration(n) * time.Second, nil
}

func parseLevel(raw string) (zapcore.Level, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	level, err := zapcore.ParseLevel(s)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("UPNOTIF_LOG_LEVEL must be one of debug, info, warn, error: %w", err)
	}
	return level, nil
}
