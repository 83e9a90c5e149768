// Package config provides type-safe environment variable loading with
// caching using Go generics. Each configuration type is loaded once and
// cached for subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct
// fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/apikit/core/config"
//
//	type ServerConfig struct {
//		Addr         string `env:"SERVER_ADDR" envDefault:":8080"`
//		APIKeyHeader string `env:"API_KEY_HEADER" envDefault:"Authorization"`
//		APIKey       string `env:"API_KEY,required"`
//	}
//
//	func main() {
//		var cfg ServerConfig
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var a ServerConfig
//	config.Load(&a) // Loads from environment
//
//	var b ServerConfig
//	config.Load(&b) // Returns cached value, a == b
package config
