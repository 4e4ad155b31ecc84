package config

import (
	"flag"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var once sync.Once
var logger *zap.SugaredLogger
var loggerOnce sync.Once

// isTestRun returns true if the current process is a Go test binary.
func isTestRun() bool {
	return flag.Lookup("test.v") != nil || filepath.Ext(os.Args[0]) == ".test"
}

func initConfig() {
	once.Do(func() {
		root, err := getProjectRoot()
		if err != nil {
			GetLogger().Errorw("Error finding project root", "error", err)
		}
		viper.SetConfigType("yaml")

		viper.SetConfigName("config")
		viper.AddConfigPath(root)
		if err = viper.ReadInConfig(); err != nil {
			GetLogger().Errorw("Error reading config file: %v", err)
		}

		if isTestRun() {
			viper.SetConfigName("config_test")
			viper.AddConfigPath(root)
		}

		err = viper.MergeInConfig()
		if err != nil {
			GetLogger().Errorw("Error reading config file", "error", err)
		}
	})
}

func getProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

func GetOpenWeatherApiUrl() string {
	initConfig()
	url := viper.GetString("openweathermap.api_url")
	if url == "" {
		url = "https://api.openweathermap.org/data/2.5/weather"
	}
	return url
}

func GetOpenWeatherMapAPIKey() string {
	_ = godotenv.Load()
	return os.Getenv("OPENWEATHERMAP_API_KEY")
}

// GetHTTPTimeout returns the provider request timeout. Defaults to 5s.
func GetHTTPTimeout() time.Duration {
	initConfig()
	return durationOrDefault("openweathermap.timeout", 5*time.Second)
}

// GetProviderRateLimit returns the outbound request budget against the
// provider as requests per minute plus burst. Defaults to 60/min, burst 5.
func GetProviderRateLimit() (perMinute float64, burst int) {
	initConfig()
	perMinute = viper.GetFloat64("openweathermap.rate_limit.per_minute")
	if perMinute == 0 {
		perMinute = 60
	}
	burst = viper.GetInt("openweathermap.rate_limit.burst")
	if burst == 0 {
		burst = 5
	}
	return
}

// GetCacheBackend returns "memory" or "redis". Defaults to "memory".
func GetCacheBackend() string {
	initConfig()
	backend := viper.GetString("cache.backend")
	if backend == "" {
		backend = "memory"
	}
	return backend
}

// GetCacheCapacity returns the max number of cities held by the in-memory
// cache. Defaults to 5.
func GetCacheCapacity() int {
	initConfig()
	capacity := viper.GetInt("cache.capacity")
	if capacity <= 0 {
		capacity = 5
	}
	return capacity
}

// GetCacheExpiration returns how long a cached payload stays fresh.
// Defaults to 10m.
func GetCacheExpiration() time.Duration {
	initConfig()
	return durationOrDefault("cache.expiration", 10*time.Minute)
}

func GetRedisAddr() string {
	initConfig()
	return viper.GetString("redis.addr")
}

func GetPeriodicCity() string {
	initConfig()
	city := viper.GetString("periodic.city")
	if city == "" {
		city = "Saskatoon"
	}
	return city
}

// GetPeriodicInterval returns the delay between background refreshes.
// Defaults to 5m.
func GetPeriodicInterval() time.Duration {
	initConfig()
	return durationOrDefault("periodic.interval", 5*time.Minute)
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	durStr := viper.GetString(key)
	if durStr == "" {
		return fallback
	}
	dur, err := time.ParseDuration(durStr)
	if err != nil {
		return fallback
	}
	return dur
}

// ReloadConfigForTest resets the config singleton and reloads Viper config. Use only in tests.
func ReloadConfigForTest() {
	once = sync.Once{}
	initConfig()
}

func GetLogger() *zap.SugaredLogger {
	loggerOnce.Do(func() {
		l, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		logger = l.Sugar()
	})
	return logger
}
