package config

import (
	"os"
	"strings"

	"github.com/JunaidMachiyara/usmanglobal-books/utils"
	"github.com/sirupsen/logrus"
)

var (
	logg *logrus.Logger
)

func GetLogger() *logrus.Logger {
	return logg
}

func init() {
	logg = logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetLevel(logLevelFromEnv())
	logg.SetOutput(os.Stdout)
}

func logLevelFromEnv() logrus.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn":
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}

func LogError(logger *logrus.Logger, moduleName string, funcName string, context string, data any, err error) {
	fields := logrus.Fields{
		"module":   moduleName,
		"funcName": funcName,
		"context":  context,
	}
	if data != nil {
		// The payload goes into the log as one JSON string so grep and the
		// log shipper see a single field whatever shape the caller passed.
		if payload, jsonErr := utils.MarshalToJSON(data); jsonErr == nil {
			fields["data"] = payload
		} else {
			fields["data"] = data
		}
	}
	logger.WithFields(fields).Error(err.Error())
}

func LogWarn(logger *logrus.Logger, moduleName string, funcName string, message string) {
	logger.WithFields(logrus.Fields{
		"module":   moduleName,
		"funcName": funcName,
	}).Warn(message)
}
