// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/trimatch/blob/master/LICENSE.txt.

// Package trimatch classifies strings, typically file paths or module identifiers, against
// sets of registered patterns: exact strings, directory patterns, prefixes, postfixes,
// single wildcard patterns and prefix/postfix pairs. Every lookup returns the best match in
// time proportional to the length of the string, whatever the number of patterns.
//
// All matchers are built on [Trie], a rune indexed prefix tree. Matchers are append only,
// and are safe for concurrent lookups once every pattern has been added.
package trimatch
