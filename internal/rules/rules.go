// Package rules loads pattern sets from YAML files and compiles them into matchers.
package rules

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tigerwill90/trimatch"
	"github.com/tigerwill90/trimatch/internal/iterutil"
	"gopkg.in/yaml.v3"
)

// Kind identifies the matcher that produced a [Hit].
type Kind string

const (
	KindDir      Kind = "dir"
	KindPrefix   Kind = "prefix"
	KindPostfix  Kind = "postfix"
	KindWildcard Kind = "wildcard"
	KindPair     Kind = "pair"
)

// Kinds lists every kind in classification order.
var Kinds = []Kind{KindDir, KindPrefix, KindPostfix, KindWildcard, KindPair}

// Rules is the content of a rules file.
type Rules struct {
	// Wildcard is the wildcard character of wildcard patterns. Empty means "*".
	Wildcard string `yaml:"wildcard"`
	// Separator is the character ending directory patterns. Empty means "/".
	Separator string          `yaml:"separator"`
	Prefixes  []string        `yaml:"prefixes"`
	Postfixes []string        `yaml:"postfixes"`
	Wildcards []string        `yaml:"wildcards"`
	Dirs      []string        `yaml:"dirs"`
	Pairs     []trimatch.Pair `yaml:"pairs"`
}

// Load reads and parses the rules file at path.
func Load(path string) (Rules, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, err
	}
	r, err := Parse(b)
	if err != nil {
		return Rules{}, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Parse decodes a YAML rules document. Unknown fields are rejected and an empty document
// yields empty rules.
func Parse(b []byte) (Rules, error) {
	var r Rules
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil && !errors.Is(err, io.EOF) {
		return Rules{}, fmt.Errorf("parse rules: %w", err)
	}
	return r, nil
}

// Set holds one matcher per kind of pattern.
type Set struct {
	dirs      *trimatch.DirMatcher
	prefixes  *trimatch.PrefixMatcher
	postfixes *trimatch.PostfixMatcher
	wildcards *trimatch.WildcardMatcher
	pairs     *trimatch.PairMatcher
}

// Compile builds the matchers of r. Registration logs go to handler, which may be nil to
// discard them. Any invalid pattern fails the whole compilation, the error joining every
// rejected pattern.
func Compile(r Rules, handler slog.Handler) (*Set, error) {
	if handler == nil {
		handler = slog.DiscardHandler
	}

	wildcard, err := marker("wildcard", r.Wildcard, trimatch.DefaultWildcard)
	if err != nil {
		return nil, err
	}
	separator, err := marker("separator", r.Separator, trimatch.DefaultSeparator)
	if err != nil {
		return nil, err
	}

	dirs, err := trimatch.NewDirMatcher(r.Dirs, trimatch.WithSeparator(separator), trimatch.WithLogger(handler))
	if err != nil {
		return nil, err
	}
	wildcards, err := trimatch.NewWildcardMatcher(r.Wildcards, trimatch.WithWildcard(wildcard), trimatch.WithLogger(handler))
	if err != nil {
		return nil, fmt.Errorf("compile rules: %w", err)
	}

	s := &Set{
		dirs:      dirs,
		prefixes:  trimatch.NewPrefixMatcher(r.Prefixes...),
		postfixes: trimatch.NewPostfixMatcher(r.Postfixes...),
		wildcards: wildcards,
		pairs:     trimatch.NewPairMatcher(r.Pairs...),
	}

	slog.New(handler).Info(
		"rules compiled",
		slog.Int("dirs", s.dirs.Len()),
		slog.Int("prefixes", s.prefixes.Len()),
		slog.Int("postfixes", s.postfixes.Len()),
		slog.Int("wildcards", s.wildcards.Len()),
		slog.Int("pairs", s.pairs.Len()),
	)

	return s, nil
}

// Hit is the best pattern of one kind matching a query.
type Hit struct {
	Kind    Kind
	Pattern string
}

// Result lists the hits of a query in classification order.
type Result []Hit

// String formats the result as space separated kind="pattern" fields, or "-" when the
// query matched nothing.
func (r Result) String() string {
	if len(r) == 0 {
		return "-"
	}
	var sb strings.Builder
	for i, hit := range r {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(string(hit.Kind))
		sb.WriteByte('=')
		sb.WriteString(strconv.Quote(hit.Pattern))
	}
	return sb.String()
}

// Classify matches q against every matcher of the set. When kinds is not empty, only the
// given kinds are reported.
func (s *Set) Classify(q string, kinds ...Kind) Result {
	if len(kinds) == 0 {
		kinds = Kinds
	}

	var result Result
	for _, kind := range Kinds {
		if !slices.Contains(kinds, kind) {
			continue
		}
		if pattern, ok := s.match(kind, q); ok {
			result = append(result, Hit{Kind: kind, Pattern: pattern})
		}
	}
	return result
}

func (s *Set) match(kind Kind, q string) (string, bool) {
	switch kind {
	case KindDir:
		return s.dirs.MatchBest(q)
	case KindPrefix:
		return s.prefixes.MatchBest(q)
	case KindPostfix:
		return s.postfixes.MatchBest(q)
	case KindWildcard:
		return s.wildcards.MatchBest(q)
	case KindPair:
		pair, ok := s.pairs.MatchBest(q)
		if !ok {
			return "", false
		}
		return pair.String(), true
	default:
		return "", false
	}
}

// Patterns returns a sequence of the registered patterns of the given kind. Pairs are
// rendered with the default wildcard between prefix and postfix.
func (s *Set) Patterns(kind Kind) iter.Seq[string] {
	switch kind {
	case KindDir:
		return s.dirs.Patterns()
	case KindPrefix:
		return s.prefixes.Prefixes()
	case KindPostfix:
		return s.postfixes.Postfixes()
	case KindWildcard:
		return s.wildcards.Patterns()
	case KindPair:
		return iterutil.Map(s.pairs.Pairs(), trimatch.Pair.String)
	default:
		return func(func(string) bool) {}
	}
}

// ParseKinds parses a comma separated list of kinds. An empty string yields no kinds.
func ParseKinds(s string) ([]Kind, error) {
	if s == "" {
		return nil, nil
	}

	var kinds []Kind
	for field := range iterutil.SplitStringSeq(s, ",") {
		kind := Kind(strings.TrimSpace(field))
		if !slices.Contains(Kinds, kind) {
			return nil, fmt.Errorf("unknown kind %q", field)
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

func marker(name, value string, def rune) (rune, error) {
	if value == "" {
		return def, nil
	}
	r, size := utf8.DecodeRuneInString(value)
	if size != len(value) {
		return 0, fmt.Errorf("%w: %s must be a single character, got %q", trimatch.ErrInvalidConfig, name, value)
	}
	return r, nil
}
