// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/trimatch/blob/master/LICENSE.txt.

package trimatch

import (
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/tigerwill90/trimatch/internal/slogpretty"
)

const (
	// DefaultWildcard is the wildcard character used by [WildcardMatcher] unless
	// configured with [WithWildcard].
	DefaultWildcard = '*'
	// DefaultSeparator is the path separator used by [DirMatcher] unless configured
	// with [WithSeparator].
	DefaultSeparator = '/'
)

type WildcardOption interface {
	applyWildcard(*config) error
}

type DirOption interface {
	applyDir(*config) error
}

type config struct {
	logger    *slog.Logger
	wildcard  rune
	separator rune
}

type optionFunc func(*config) error

func (o optionFunc) applyWildcard(c *config) error {
	return o(c)
}

func (o optionFunc) applyDir(c *config) error {
	return o(c)
}

func defaultConfig() *config {
	return &config{
		logger:    slog.New(slog.DiscardHandler),
		wildcard:  DefaultWildcard,
		separator: DefaultSeparator,
	}
}

// WithWildcard sets the character standing for an arbitrary span in wildcard patterns.
// The default is [DefaultWildcard].
func WithWildcard(r rune) WildcardOption {
	return optionFunc(func(c *config) error {
		if !validMarker(r) {
			return fmt.Errorf("%w: invalid wildcard character %q", ErrInvalidConfig, r)
		}
		c.wildcard = r
		return nil
	})
}

// WithSeparator sets the character that marks a directory pattern when it ends a pattern.
// The default is [DefaultSeparator].
func WithSeparator(r rune) DirOption {
	return optionFunc(func(c *config) error {
		if !validMarker(r) {
			return fmt.Errorf("%w: invalid separator character %q", ErrInvalidConfig, r)
		}
		c.separator = r
		return nil
	})
}

// WithLogger sets the handler receiving pattern registration logs. Registrations are logged
// at debug level and rejected patterns at warn level. Lookups never log. By default, logs
// are discarded.
func WithLogger(handler slog.Handler) interface {
	WildcardOption
	DirOption
} {
	return optionFunc(func(c *config) error {
		if handler == nil {
			return fmt.Errorf("%w: log handler cannot be nil", ErrInvalidConfig)
		}
		c.logger = slog.New(handler)
		return nil
	})
}

// WithPrettyLogs configures human-readable, colorized logging optimized for terminal output.
// This is meant for debugging pattern sets and is not recommended in hot paths that build
// many matchers.
func WithPrettyLogs() interface {
	WildcardOption
	DirOption
} {
	return optionFunc(func(c *config) error {
		c.logger = slog.New(slogpretty.DefaultHandler)
		return nil
	})
}

func validMarker(r rune) bool {
	return r != utf8.RuneError && utf8.ValidRune(r)
}
