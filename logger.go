// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/trimatch/blob/master/LICENSE.txt.

package trimatch

import (
	"context"
	"log/slog"
)

type patternKind string

const (
	kindExact    patternKind = "exact"
	kindWildcard patternKind = "wildcard"
	kindDir      patternKind = "dir"
)

func logRegistered(log *slog.Logger, kind patternKind, pattern string) {
	if !log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	log.LogAttrs(
		context.Background(),
		slog.LevelDebug,
		"pattern registered",
		slog.String("kind", string(kind)),
		slog.String("pattern", pattern),
	)
}

func logRejected(log *slog.Logger, pattern string, err error) {
	log.LogAttrs(
		context.Background(),
		slog.LevelWarn,
		"pattern rejected",
		slog.String("pattern", pattern),
		slog.String("error", err.Error()),
	)
}
