/*
 * Copyright 2026 The uniqln Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package fingerprint maps lines to the compact keys used to decide whether a
// line has been seen before.
//
// The default Fast method keys a line by a 64-bit multiply-add hash.  Two
// distinct lines may share a fingerprint, in which case the second is treated
// as a duplicate and silently dropped.  Callers needing exact results should
// select Strict (a 128-bit keyed hash) or Exact (the line itself).
package fingerprint // import "uniqln.io/uniqln/go/util/fingerprint"

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/minio/highwayhash"
)

// Seed is the initial value of a Sum64 fingerprint.
const Seed = 5381

// Sum64 returns the 64-bit fingerprint of line: starting from Seed, each byte
// b is folded in as h = h*33 + b, wrapping modulo 2^64.
func Sum64(line []byte) uint64 {
	h := uint64(Seed)
	for _, b := range line {
		h = h<<5 + h + uint64(b)
	}
	return h
}

// Sum128 returns the 128-bit HighwayHash of line under a fixed key.
func Sum128(line []byte) [highwayhash.Size128]byte {
	return highwayhash.Sum128(line, hashKey[:])
}

// Binary-encoding of ("uniqln/fingerprint/strict/v1\n" padded to 32 bytes).
var hashKey = [32]byte{
	0x75, 0x6e, 0x69, 0x71, 0x6c, 0x6e, 0x2f, 0x66,
	0x69, 0x6e, 0x67, 0x65, 0x72, 0x70, 0x72, 0x69,
	0x6e, 0x74, 0x2f, 0x73, 0x74, 0x72, 0x69, 0x63,
	0x74, 0x2f, 0x76, 0x31, 0x0a, 0x00, 0x00, 0x00,
}

// Method selects how a line is keyed.
type Method int

// Supported fingerprint methods.
const (
	// Fast keys a line by Sum64.  Collisions drop lines silently.
	Fast Method = iota
	// Strict keys a line by Sum128.
	Strict
	// Exact keys a line by its own bytes.
	Exact
)

// KeySize returns the size in bytes of keys produced by m, or -1 if keys vary
// in length with the line.
func (m Method) KeySize() int {
	switch m {
	case Fast:
		return 8
	case Strict:
		return highwayhash.Size128
	default:
		return -1
	}
}

// Key appends the key of line under m to dst and returns the extended slice.
func (m Method) Key(dst, line []byte) []byte {
	switch m {
	case Strict:
		sum := Sum128(line)
		return append(dst, sum[:]...)
	case Exact:
		return append(dst, line...)
	default:
		return binary.BigEndian.AppendUint64(dst, Sum64(line))
	}
}

// String implements the fmt.Stringer interface.
func (m Method) String() string {
	switch m {
	case Fast:
		return "fast"
	case Strict:
		return "strict"
	case Exact:
		return "exact"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod returns the Method named by s.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(s) {
	case "fast", "":
		return Fast, nil
	case "strict":
		return Strict, nil
	case "exact":
		return Exact, nil
	default:
		return Fast, fmt.Errorf("unknown fingerprint method: %q", s)
	}
}

// Set implements part of the flag.Value interface.
func (m *Method) Set(s string) error {
	v, err := ParseMethod(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Get implements part of the flag.Getter interface.
func (m *Method) Get() any { return *m }
