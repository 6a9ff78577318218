// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Storage drivers accepted by [Storage.Driver].
const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

// StructuredConfig is the top-level configuration container for the
// go-box-keeper binaries. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the durable slot backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Inventory holds the capacity policy and quantity rules.
	Inventory Inventory `envPrefix:"INVENTORY_"`

	// Server holds settings of the local HTTP API.
	Server Server `envPrefix:"SERVER_"`

	// Adapter points the terminal client at a remote HTTP API instead of a
	// local store.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// DeepLinkScheme is the URL scheme of links printed on box labels,
	// e.g. "boxkeeper" for "boxkeeper://box/<id>".
	// Env: APP_DEEP_LINK_SCHEME
	DeepLinkScheme string `env:"DEEP_LINK_SCHEME"`
}

// Storage groups the configuration of the durable slot.
type Storage struct {
	// SlotKey identifies the slot holding the inventory snapshot. Required.
	// Env: STORAGE_SLOT_KEY
	SlotKey string `env:"SLOT_KEY"`

	// Driver is one of the Driver* constants. Defaults to [DriverFile].
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DB holds the relational database connection settings used by the
	// sqlite and postgres drivers.
	DB DB `envPrefix:"DB_"`

	// Files holds the settings of the file driver.
	Files Files `envPrefix:"FILES_"`

	// Redis holds the settings of the redis driver.
	Redis Redis `envPrefix:"REDIS_"`

	// Passphrase, when set, seals the snapshot with AES-GCM before it reaches
	// the backend. There is no flag for it so it stays out of process lists.
	// Env: STORAGE_PASSPHRASE
	Passphrase string `env:"PASSPHRASE"`
}

// DB holds connection settings for the relational database backends.
type DB struct {
	// DSN is a sqlite file path or a PostgreSQL connection string.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Files holds file-system settings for the file driver.
type Files struct {
	// Dir is the directory slot files are written to.
	// Env: STORAGE_FILES_DIR
	Dir string `env:"DIR"`
}

// Redis holds connection settings for the redis driver.
type Redis struct {
	// Env: STORAGE_REDIS_ADDR
	Addr string `env:"ADDR"`
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: STORAGE_REDIS_DB
	DB int `env:"DB"`
}

// Inventory holds the capacity policy. Zero ceilings mean unlimited.
type Inventory struct {
	// MaxBoxes caps the total number of boxes.
	// Env: INVENTORY_MAX_BOXES
	MaxBoxes int `env:"MAX_BOXES"`

	// MaxItemsPerBox caps the number of items (not quantities) in one box.
	// Env: INVENTORY_MAX_ITEMS_PER_BOX
	MaxItemsPerBox int `env:"MAX_ITEMS_PER_BOX"`

	// MinQuantity is the smallest accepted item quantity. Defaults to 1.
	// Env: INVENTORY_MIN_QUANTITY
	MinQuantity int `env:"MIN_QUANTITY"`
}

// Server holds network and timeout settings of the local HTTP API.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on,
	// in "host:port" format (e.g. "127.0.0.1:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds settings of the REST client used in remote mode.
type Adapter struct {
	// HTTPAddress is the base URL of the remote HTTP API. When empty the
	// terminal client works on a local store.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout of every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// IsRemote reports whether the client should talk to a remote HTTP API.
func (a Adapter) IsRemote() bool {
	return a.HTTPAddress != ""
}

// defaults returns the lowest-priority configuration source.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DeepLinkScheme: "boxkeeper",
		},
		Storage: Storage{
			Driver: DriverFile,
			Files:  Files{Dir: defaultDataDir()},
		},
		Inventory: Inventory{
			MinQuantity: 1,
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			RequestTimeout: 15 * time.Second,
		},
	}
}

func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "data"
	}
	return dir + string(os.PathSeparator) + "go-box-keeper"
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
