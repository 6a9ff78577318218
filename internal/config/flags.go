// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-slot durable slot key
//	-driver storage driver (file, sqlite, postgres, redis, memory)
//	-f directory for the file driver
//	-d database DSN for the sqlite and postgres drivers
//	-redis-addr redis address
//	-max-boxes box ceiling, 0 for unlimited
//	-max-items-per-box per-box item ceiling, 0 for unlimited
//	-min-quantity smallest accepted item quantity
//	-remote base URL of a remote go-box-keeper server
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-box-keeper", flag.ContinueOnError)

	var serverAddress NetAddress
	var slotKey, driver, filesDir, databaseDSN, redisAddr string
	var maxBoxes, maxItemsPerBox, minQuantity int
	var remoteAddress string
	var requestTimeout time.Duration
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&slotKey, "slot", "", "Durable slot key")
	fs.StringVar(&driver, "driver", "", "Storage driver")
	fs.StringVar(&filesDir, "f", "", "Directory for the file driver")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&redisAddr, "redis-addr", "", "Redis address host:port")
	fs.IntVar(&maxBoxes, "max-boxes", 0, "Maximum number of boxes, 0 for unlimited")
	fs.IntVar(&maxItemsPerBox, "max-items-per-box", 0, "Maximum number of items per box, 0 for unlimited")
	fs.IntVar(&minQuantity, "min-quantity", 0, "Smallest accepted item quantity")
	fs.StringVar(&remoteAddress, "remote", "", "Remote server base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Storage: Storage{
			SlotKey: slotKey,
			Driver:  driver,
			DB:      DB{DSN: databaseDSN},
			Files:   Files{Dir: filesDir},
			Redis:   Redis{Addr: redisAddr},
		},
		Inventory: Inventory{
			MaxBoxes:       maxBoxes,
			MaxItemsPerBox: maxItemsPerBox,
			MinQuantity:    minQuantity,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
