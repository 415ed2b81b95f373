package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap/zapcore"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	rpcURLEnvKey       = "RPC_URL"
	programIDEnvKey    = "PROGRAM_ID"
	dbConnEnvKey       = "DB_CONNECTION_URL"
	syncIntervalEnvKey = "SYNC_INTERVAL"
	apiPortEnvKey      = "API_PORT"
	jwtSecretEnvKey    = "JWT_SECRET"
	logLevelEnvKey     = "LOG_LEVEL"
)

type App struct {
	RPCURL          string
	ProgramID       solana.PublicKey
	DBConnectionURL string
	// SyncInterval of zero means a single pass and exit.
	SyncInterval time.Duration
	// APIPort empty means the HTTP surface is disabled.
	APIPort   string
	JWTSecret string
	LogLevel  zapcore.Level
}

func NewApp() (App, error) {

	rpcURL, ok := os.LookupEnv(rpcURLEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, rpcURLEnvKey)
	}

	programIDStr, ok := os.LookupEnv(programIDEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, programIDEnvKey)
	}
	programID, err := solana.PublicKeyFromBase58(programIDStr)
	if err != nil {
		return App{}, fmt.Errorf("parse %s: %w", programIDEnvKey, err)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	var syncInterval time.Duration
	if intervalStr, ok := os.LookupEnv(syncIntervalEnvKey); ok && intervalStr != "" {
		syncInterval, err = time.ParseDuration(intervalStr)
		if err != nil {
			return App{}, fmt.Errorf("parse %s: %w", syncIntervalEnvKey, err)
		}
	}

	apiPort := os.Getenv(apiPortEnvKey)
	jwtSecret := os.Getenv(jwtSecretEnvKey)
	if apiPort != "" && jwtSecret == "" {
		return App{}, fmt.Errorf("%w: %s (required when %s is set)", errEnvVarNotFound, jwtSecretEnvKey, apiPortEnvKey)
	}

	logLevel := zapcore.InfoLevel
	if lvlStr, ok := os.LookupEnv(logLevelEnvKey); ok && lvlStr != "" {
		logLevel, err = zapcore.ParseLevel(lvlStr)
		if err != nil {
			return App{}, fmt.Errorf("parse %s: %w", logLevelEnvKey, err)
		}
	}

	return App{
		RPCURL:          rpcURL,
		ProgramID:       programID,
		DBConnectionURL: dbConn,
		SyncInterval:    syncInterval,
		APIPort:         apiPort,
		JWTSecret:       jwtSecret,
		LogLevel:        logLevel,
	}, nil
}
