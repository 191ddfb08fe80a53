package models

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sondeo/sondeo/pkg/env"
)

type Duration time.Duration

// Server configuration
type Configuration struct {
	// IP address and port to listen on
	Listen string `yaml:"listen"`
	// Log level (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
	// Static bearer token required on API routes; empty leaves them open
	Token string `yaml:"token"`
	// Optional redis backend surfaced by the redis stats collector
	Redis RedisConfiguration `yaml:"redis"`
	// Webhook probing limits
	Probe ProbeConfiguration `yaml:"probe"`
}

type RedisConfiguration struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type ProbeConfiguration struct {
	Timeout Duration `yaml:"timeout"`
}

// Load a YAML configuration file
func ReadConfiguration(path string) (*Configuration, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c := Configuration{}
	err = yaml.NewDecoder(f).Decode(&c)
	if err != nil {
		return nil, err
	}
	c.applyDefaults(env.NewAccessor())

	return &c, nil
}

func (c *Configuration) applyDefaults(accessor *env.Accessor) {
	if len(c.Listen) == 0 {
		port := accessor.Optional("PORT", "8600")
		c.Listen = "0.0.0.0:" + port
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	if c.Token == "" {
		c.Token = accessor.Optional("SONDEO_TOKEN", "")
	}

	if c.Probe.Timeout == 0 {
		c.Probe.Timeout = Duration(10 * time.Second)
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("invalid node kind: %v", node.Kind)
	}
	parsed, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("invalid duration: %v", err)
	}
	*d = Duration(parsed)
	return nil
}

