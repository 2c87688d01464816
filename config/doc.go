// Package config loads fetchkit configuration from YAML files and
// environment variables, with .env support for local development.
//
// Configuration structs implement Loadable so defaults and validation run
// as part of loading:
//
//	type AppConfig struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Fetch fetch.Config `yaml:"fetch" mapstructure:"fetch"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load("myapp", &cfg); err != nil {
//	    return err
//	}
package config
