// Package config loads primekit application configuration from YAML files,
// .env files, and environment variables using viper.
//
// Typical use: embed ServiceConfig in an application config struct, then
//
//	var cfg MyConfig
//	if err := config.LoadConfig("primes", &cfg); err != nil { ... }
//	cfg.ApplyDefaults()
//	if err := config.ValidateStruct(&cfg); err != nil { ... }
package config
