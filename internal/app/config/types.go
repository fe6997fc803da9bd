package config

import (
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	goredis "github.com/redis/go-redis/v9"
)

type DriverConfig struct {
	MongoDB MongoDB
	Redis   Redis
	Logger  Logger
}

type MongoDB struct {
	Enabled  bool
	Host     string
	Port     string
	DbName   string
	Username string
	Password string
}

type Redis struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
}

type Logger struct {
	Level               string
	OutputFileName      string
	OutputErrorFileName string
}

type InternalConfig struct {
	App        App
	OpenDental OpenDental
	MCP        MCP
	RateLimit  RateLimit
	Audit      Audit
}

type App struct {
	Env             string
	Port            string
	Version         string
	Name            string
	Transport       string
	ShutdownTimeout int
	MaxRequests     int
}

type OpenDental struct {
	BaseURL string
	// TimeoutSeconds guards the patient list lookup; ReportTimeoutSeconds is
	// the long class used by chart and report generation. Both configurable
	// because the backend's latency profile is not ours to hard-code.
	TimeoutSeconds       int
	ReportTimeoutSeconds int
}

type MCP struct {
	AuthSecret string
}

type RateLimit struct {
	PerToolPerMinute int
}

type Audit struct {
	Enabled bool
}

type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Client
	Redis          *goredis.Client
	Logger         *zap.Logger
	DriverConfig   *DriverConfig
	InternalConfig *InternalConfig
}
