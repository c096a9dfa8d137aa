package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "cts"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	runParallelFlagName = "parallel"
	runTimeoutFlagName  = "timeout"
	runWorkersFlagName  = "workers"
	verboseFlagName     = "verbose"
	debugFlagName       = "debug"
	listingFlagName     = "listing"
	expectationsFlag    = "expectations"
	storeFlagName       = "store"

	runParallelConfigKey  = "run.parallel"
	runTimeoutConfigKey   = "run.timeout"
	runWorkersConfigKey   = "run.workers"
	debugConfigKey        = "debug"
	listingPathConfigKey  = "listing.path"
	expectationsConfigKey = "expectations.path"
	storePathConfigKey    = "store.path"
	uiTUIConfigKey        = "ui.tui"
	serveRootConfigKey    = "serve.root"

	defaultRunTimeout  = time.Minute
	defaultRunWorkers  = 0
	defaultStorePath   = ".cts/results.db"
	defaultUseTUI      = true
	defaultServeRoot   = "webgpu:*"
	defaultHistorySize = 20

	envPrefix = "CTS"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".cts.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// defaultRunParallel is one case per CPU.
var defaultRunParallel = runtime.NumCPU()

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(runTimeoutConfigKey, int64(defaultRunTimeout.Seconds()))
	viper.SetDefault(runWorkersConfigKey, defaultRunWorkers)
	viper.SetDefault(debugConfigKey, false)
	viper.SetDefault(listingPathConfigKey, "")
	viper.SetDefault(expectationsConfigKey, "")
	viper.SetDefault(storePathConfigKey, defaultStorePath)
	viper.SetDefault(uiTUIConfigKey, defaultUseTUI)
	viper.SetDefault(serveRootConfigKey, defaultServeRoot)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

// runTimeout reads run.timeout, a number of seconds. Zero or less disables it.
func runTimeout() time.Duration {
	seconds := viper.GetInt64(runTimeoutConfigKey)
	if seconds <= 0 {
		return 0
	}

	return time.Duration(seconds) * time.Second
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose || viper.GetBool(logVerboseKey) {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
