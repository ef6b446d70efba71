package config

import (
	"context"
	"os"
)

type ctxKey struct{}

type workDirKey struct{}

// WithConfig attaches the configuration to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext returns the configuration attached to ctx, or nil.
func FromContext(ctx context.Context) *Config {
	cfg, _ := ctx.Value(ctxKey{}).(*Config)
	return cfg
}

// WithWorkDir attaches the working directory to the context.
func WithWorkDir(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, workDirKey{}, dir)
}

// WorkDirFromContext returns the working directory attached to ctx,
// falling back to os.Getwd.
func WorkDirFromContext(ctx context.Context) string {
	if dir, _ := ctx.Value(workDirKey{}).(string); dir != "" {
		return dir
	}
	wd, _ := os.Getwd()
	return wd
}
