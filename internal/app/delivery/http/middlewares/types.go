package middlewares

import "go.uber.org/zap"

type Middlewares struct {
	Log        *zap.Logger
	AuthSecret string
}

func NewMiddlewares(log *zap.Logger, authSecret string) *Middlewares {
	return &Middlewares{
		Log:        log,
		AuthSecret: authSecret,
	}
}
