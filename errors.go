// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/trimatch/blob/master/LICENSE.txt.

package trimatch

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrInvalidPattern = errors.New("invalid pattern")
	ErrInvalidConfig  = errors.New("invalid config")
)

// InvalidPatternError is returned when a wildcard pattern holds the wildcard character
// more than once.
type InvalidPatternError struct {
	// Pattern is the rejected pattern, as given to Add.
	Pattern string
	// Wildcard is the wildcard character of the matcher.
	Wildcard rune
	// Count is the number of wildcard characters found in Pattern.
	Count int
}

func (e *InvalidPatternError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid pattern: ")
	sb.WriteString(strconv.Quote(e.Pattern))
	sb.WriteString(" has ")
	sb.WriteString(strconv.Itoa(e.Count))
	sb.WriteString(" wildcards ")
	sb.WriteString(strconv.QuoteRune(e.Wildcard))
	sb.WriteString(", at most one is allowed")
	return sb.String()
}

// Unwrap returns the sentinel value [ErrInvalidPattern].
func (e *InvalidPatternError) Unwrap() error {
	return ErrInvalidPattern
}
