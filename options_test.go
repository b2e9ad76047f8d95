package trimatch

import (
	"bytes"
	"log/slog"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tigerwill90/trimatch/internal/slogpretty"
)

func TestDefaultConfig(t *testing.T) {
	w, err := NewWildcardMatcher(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultWildcard, w.Wildcard())
	assert.False(t, w.cfg.logger.Enabled(t.Context(), slog.LevelError))

	d, err := NewDirMatcher(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultSeparator, d.Separator())
}

func TestWithWildcard(t *testing.T) {
	cases := []struct {
		name    string
		r       rune
		wantErr error
	}{
		{name: "ascii", r: '%'},
		{name: "multi bytes", r: '…'},
		{name: "rune error", r: utf8.RuneError, wantErr: ErrInvalidConfig},
		{name: "surrogate", r: 0xD800, wantErr: ErrInvalidConfig},
		{name: "negative", r: -1, wantErr: ErrInvalidConfig},
		{name: "out of range", r: utf8.MaxRune + 1, wantErr: ErrInvalidConfig},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := NewWildcardMatcher(nil, WithWildcard(tc.r))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.r, m.Wildcard())
		})
	}
}

func TestWithSeparator(t *testing.T) {
	m, err := NewDirMatcher(nil, WithSeparator(':'))
	require.NoError(t, err)
	assert.Equal(t, ':', m.Separator())

	m, err = NewDirMatcher(nil, WithSeparator(utf8.RuneError))
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Nil(t, m)
}

func TestWithLogger(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	h := slogpretty.New(buf, buf, slog.LevelDebug)

	_, err := NewWildcardMatcher([]string{"src/*.go", "Makefile", "a**"}, WithLogger(h))
	require.Error(t, err)
	_, err = NewDirMatcher([]string{"src/"}, WithLogger(h))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "pattern registered")
	assert.Contains(t, out, "src/*.go")
	assert.Contains(t, out, "Makefile")
	assert.Contains(t, out, "pattern rejected")
	assert.Contains(t, out, "a**")
	assert.Equal(t, 4, bytes.Count(buf.Bytes(), []byte{'\n'}))

	_, err = NewDirMatcher(nil, WithLogger(nil))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestWithLoggerLevel(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	h := slogpretty.New(buf, buf, slog.LevelWarn)

	m, err := NewWildcardMatcher([]string{"src/*.go", "lib/*"}, WithLogger(h))
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	require.Error(t, m.Add("*/*"))
	assert.Contains(t, buf.String(), "pattern rejected")
}

func TestWithPrettyLogs(t *testing.T) {
	m, err := NewWildcardMatcher(nil, WithPrettyLogs())
	require.NoError(t, err)
	assert.Same(t, slogpretty.DefaultHandler, m.cfg.logger.Handler())

	d, err := NewDirMatcher(nil, WithPrettyLogs())
	require.NoError(t, err)
	assert.Same(t, slogpretty.DefaultHandler, d.cfg.logger.Handler())
}
