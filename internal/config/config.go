package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

var errEnvVarNotFound error = errors.New("environment variable not found")
var errEnvVarInvalid error = errors.New("environment variable is invalid")

const (
	apiPortEnvKey   = "API_PORT"
	dbConnEnvKey    = "DB_CONNECTION_URL"
	jwtSecretEnvKey = "JWT_SECRET"

	pollIntervalEnvKey = "POLL_INTERVAL"
	maxBlockSpanEnvKey = "MAX_BLOCK_SPAN"
	rpcTimeoutEnvKey   = "RPC_TIMEOUT"
	defaultPageEnvKey  = "DEFAULT_PAGE_SIZE"
	maxPageEnvKey      = "MAX_PAGE_SIZE"

	rpcURLEnvPrefix = "RPC_URL_"
)

type App struct {
	Port            string
	DBConnectionURL string
	JWTSecret       string

	PollInterval time.Duration
	MaxBlockSpan uint64
	RPCTimeout   time.Duration

	DefaultPageSize int
	MaxPageSize     int

	// RPCOverrides maps chain id to an RPC endpoint replacing the built-in one,
	// collected from RPC_URL_<chainId> variables.
	RPCOverrides map[int64]string
}

func NewApp() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	pollInterval, err := durationOrDefault(pollIntervalEnvKey, 15*time.Second)
	if err != nil {
		return App{}, err
	}

	rpcTimeout, err := durationOrDefault(rpcTimeoutEnvKey, 10*time.Second)
	if err != nil {
		return App{}, err
	}

	maxBlockSpan, err := uintOrDefault(maxBlockSpanEnvKey, 10)
	if err != nil {
		return App{}, err
	}

	defaultPageSize, err := uintOrDefault(defaultPageEnvKey, 20)
	if err != nil {
		return App{}, err
	}

	maxPageSize, err := uintOrDefault(maxPageEnvKey, 100)
	if err != nil {
		return App{}, err
	}

	return App{
		Port:            port,
		DBConnectionURL: dbConn,
		JWTSecret:       jwtSecret,
		PollInterval:    pollInterval,
		MaxBlockSpan:    maxBlockSpan,
		RPCTimeout:      rpcTimeout,
		DefaultPageSize: int(defaultPageSize),
		MaxPageSize:     int(maxPageSize),
		RPCOverrides:    rpcOverrides(os.Environ()),
	}, nil
}

func durationOrDefault(key string, fallback time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %s", errEnvVarInvalid, key, raw, err)
	}
	return value, nil
}

func uintOrDefault(key string, fallback uint64) (uint64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		return 0, fmt.Errorf("%w: %s=%q: must be a positive integer", errEnvVarInvalid, key, raw)
	}
	return value, nil
}

func rpcOverrides(environ []string) map[int64]string {
	overrides := make(map[int64]string)
	for _, entry := range environ {
		key, value, found := strings.Cut(entry, "=")
		if !found || !strings.HasPrefix(key, rpcURLEnvPrefix) || value == "" {
			continue
		}

		chainID, err := strconv.ParseInt(strings.TrimPrefix(key, rpcURLEnvPrefix), 10, 64)
		if err != nil {
			continue
		}
		overrides[chainID] = value
	}
	return overrides
}
