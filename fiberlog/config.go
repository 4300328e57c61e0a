package fiberlog

import "github.com/sirupsen/logrus"

type Config struct {
	// Logger если не задан - используется стандартный логгер logrus
	Logger *logrus.Logger
	Tags   []string
}

var ConfigDefault = Config{
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
		TagActor,
	},
}
