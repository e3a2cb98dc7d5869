package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileConfig is the optional YAML file named by CONFIG_FILE. It carries the
// non-secret settings; credentials stay in the environment.
type fileConfig struct {
	Database struct {
		Host    string `yaml:"host"`
		Port    int    `yaml:"port"`
		User    string `yaml:"user"`
		Name    string `yaml:"name"`
		SSLMode string `yaml:"ssl_mode"`
	} `yaml:"database"`
	App struct {
		Port            int      `yaml:"port"`
		Env             string   `yaml:"env"`
		LogLevel        string   `yaml:"log_level"`
		Timezone        string   `yaml:"timezone"`
		FrontendOrigins []string `yaml:"frontend_origins"`
		AllowTestSignup *bool    `yaml:"allow_test_signup"`
	} `yaml:"app"`
	Leave struct {
		DefaultAnnualDays *float64 `yaml:"default_annual_days"`
		StandardCloseHour *int     `yaml:"standard_close_hour"`
	} `yaml:"leave"`
}

// env flattens the file into the environment keys Load reads.
func (f fileConfig) env() map[string]string {
	m := map[string]string{}
	set := func(key, value string) {
		if value != "" {
			m[key] = value
		}
	}
	setInt := func(key string, value int) {
		if value != 0 {
			m[key] = strconv.Itoa(value)
		}
	}

	set("DB_HOST", f.Database.Host)
	setInt("DB_PORT", f.Database.Port)
	set("DB_USER", f.Database.User)
	set("DB_NAME", f.Database.Name)
	set("DB_SSL_MODE", f.Database.SSLMode)

	setInt("APP_PORT", f.App.Port)
	set("APP_ENV", f.App.Env)
	set("LOG_LEVEL", f.App.LogLevel)
	set("APP_TIMEZONE", f.App.Timezone)
	set("FRONTEND_ORIGINS", strings.Join(f.App.FrontendOrigins, ","))
	if f.App.AllowTestSignup != nil {
		m["ALLOW_TEST_SIGNUP"] = strconv.FormatBool(*f.App.AllowTestSignup)
	}

	if f.Leave.DefaultAnnualDays != nil {
		m["DEFAULT_ANNUAL_LEAVE_DAYS"] = strconv.FormatFloat(*f.Leave.DefaultAnnualDays, 'f', -1, 64)
	}
	if f.Leave.StandardCloseHour != nil {
		m["STANDARD_CLOSE_HOUR"] = strconv.Itoa(*f.Leave.StandardCloseHour)
	}
	return m
}

// loadFile applies the YAML file at path to every variable that is still
// unset, the same way .env values are applied.
func loadFile(path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	for key, value := range fc.env() {
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}
	return nil
}
