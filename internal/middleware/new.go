package middleware

import (
	"chatbot-nlp-service/config"
	"chatbot-nlp-service/pkg/log"
)

type Middleware struct {
	l   log.Logger
	cfg config.HTTPServerConfig
}

func New(l log.Logger, cfg config.HTTPServerConfig) Middleware {
	return Middleware{
		l:   l,
		cfg: cfg,
	}
}
