/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package config provides viper backed configuration backends. Every key can
// be overridden from the environment: client.network.address is read from
// HEDERA_SDK_CLIENT_NETWORK_ADDRESS unless another prefix is given.
package config

import (
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/hashgraph/hedera-sdk-go/pkg/common/logging"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/providers/core"
)

var logModules = [...]string{"hederasdk", "hedera/txn", "hedera/comm", "hedera/metrics", "hedera/mocks",
	"client/transaction", "client/query"}

type options struct {
	envPrefix string
}

const (
	cmdRoot = "HEDERA_SDK"

	loggingLevelKey = "client.logging.level"
)

// Option configures the package.
type Option func(opts *options) error

// FromReader loads configuration from in.
// configType can be "json" or "yaml".
func FromReader(in io.Reader, configType string, opts ...Option) core.ConfigProvider {
	return func() ([]core.ConfigBackend, error) {
		return initFromReader(in, configType, opts...)
	}
}

// FromFile reads from named config file
func FromFile(name string, opts ...Option) core.ConfigProvider {
	return func() ([]core.ConfigBackend, error) {
		if name == "" {
			return nil, errors.New("filename is required")
		}

		backend, err := newBackend(opts...)
		if err != nil {
			return nil, err
		}

		backend.configViper.SetConfigFile(name)
		if err := backend.configViper.MergeInConfig(); err != nil {
			return nil, errors.Wrapf(err, "loading config file failed: %s", name)
		}

		if err := setLogLevel(backend); err != nil {
			return nil, err
		}
		return []core.ConfigBackend{backend}, nil
	}
}

// FromRaw will initialize the configs from a byte array
func FromRaw(configBytes []byte, configType string, opts ...Option) core.ConfigProvider {
	return func() ([]core.ConfigBackend, error) {
		return initFromReader(bytes.NewBuffer(configBytes), configType, opts...)
	}
}

// FromEnv returns a backend populated only from environment variables.
func FromEnv(opts ...Option) core.ConfigProvider {
	return func() ([]core.ConfigBackend, error) {
		backend, err := newBackend(opts...)
		if err != nil {
			return nil, err
		}
		if err := setLogLevel(backend); err != nil {
			return nil, err
		}
		return []core.ConfigBackend{backend}, nil
	}
}

func initFromReader(in io.Reader, configType string, opts ...Option) ([]core.ConfigBackend, error) {
	if configType == "" {
		return nil, errors.New("empty config type")
	}

	backend, err := newBackend(opts...)
	if err != nil {
		return nil, err
	}

	// viper needs the type to unmarshal a raw stream
	backend.configViper.SetConfigType(configType)
	if err := backend.configViper.MergeConfig(in); err != nil {
		return nil, errors.Wrap(err, "reading config failed")
	}

	if err := setLogLevel(backend); err != nil {
		return nil, err
	}
	return []core.ConfigBackend{backend}, nil
}

// WithEnvPrefix defines the prefix for environment variable overrides.
// See viper SetEnvPrefix for more information.
func WithEnvPrefix(prefix string) Option {
	return func(opts *options) error {
		if prefix == "" {
			return errors.New("environment prefix must not be empty")
		}
		opts.envPrefix = prefix
		return nil
	}
}

func newBackend(opts ...Option) (*defConfigBackend, error) {
	o := options{
		envPrefix: cmdRoot,
	}

	for _, option := range opts {
		if err := option(&o); err != nil {
			return nil, errors.WithMessage(err, "Error in options passed to create new config backend")
		}
	}

	return &defConfigBackend{
		configViper: newViper(o.envPrefix),
		opts:        o,
	}, nil
}

func newViper(cmdRootPrefix string) *viper.Viper {
	myViper := viper.New()
	myViper.SetEnvPrefix(cmdRootPrefix)
	myViper.AutomaticEnv()
	replacer := strings.NewReplacer(".", "_")
	myViper.SetEnvKeyReplacer(replacer)
	return myViper
}

// setLogLevel applies client.logging.level to every SDK module
func setLogLevel(backend core.ConfigBackend) error {
	logLevel := logging.INFO
	if value, ok := backend.Lookup(loggingLevelKey); ok {
		levelString, ok := value.(string)
		if !ok {
			return errors.Errorf("%s must be a string", loggingLevelKey)
		}
		var err error
		logLevel, err = logging.LogLevel(levelString)
		if err != nil {
			return errors.WithMessage(err, "invalid client.logging.level")
		}
	}

	for _, logModule := range logModules {
		logging.SetLevel(logModule, logLevel)
	}
	return nil
}
