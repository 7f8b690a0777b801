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

// Package datasize implements a type representing data sizes in bytes, for
// use in flags such as --buffer_size=16KiB.
package datasize // import "uniqln.io/uniqln/go/util/datasize"

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Size represents the size of data in bytes.
type Size uint64

// Common binary data sizes
const (
	Byte     Size = 1
	Kibibyte      = 1024 * Byte
	Mebibyte      = 1024 * Kibibyte
	Gibibyte      = 1024 * Mebibyte
)

// Common decimal data sizes
const (
	Kilobyte Size = 1000 * Byte
	Megabyte      = 1000 * Kilobyte
	Gigabyte      = 1000 * Megabyte
)

var units = map[string]Size{
	"b":   Byte,
	"kb":  Kilobyte,
	"mb":  Megabyte,
	"gb":  Gigabyte,
	"kib": Kibibyte,
	"mib": Mebibyte,
	"gib": Gibibyte,
}

var sizeRE = regexp.MustCompile(`^([0-9]*)(\.[0-9]*)?([a-z]+)$`)

// Parse parses a Size from a string.  A Size is an unsigned decimal number with
// an optional fraction and a unit suffix.  Examples: "0", "10B", "1kB", "16KiB",
// "1.5MiB".  Valid units are "B", "kB", "MB", "GB", "KiB", "MiB", "GiB".
func Parse(s string) (Size, error) {
	if s == "" {
		return 0, errors.New("datasize: invalid Size: empty")
	}
	if num, err := strconv.ParseUint(s, 10, 64); err == nil {
		return Size(num), nil
	}

	ss := sizeRE.FindStringSubmatch(strings.ToLower(s))
	if len(ss) == 0 || ss[1]+ss[2] == "" {
		return 0, fmt.Errorf("datasize: invalid Size format %q", s)
	}
	num, err := strconv.ParseFloat(ss[1]+ss[2], 64)
	if err != nil {
		return 0, err
	}
	unit, ok := units[ss[3]]
	if !ok {
		return 0, fmt.Errorf("unknown datasize unit suffix: %q", ss[3])
	}
	return Size(num * float64(unit)), nil
}

// Int returns s as an int, or an error if it does not fit.
func (s Size) Int() (int, error) {
	if uint64(s) > math.MaxInt {
		return 0, fmt.Errorf("datasize: %v overflows int", s)
	}
	return int(s), nil
}

// String implements the Stringer interface.
func (s Size) String() string {
	switch {
	case s == 0:
		return "0B"
	case s%Gibibyte == 0:
		return fmt.Sprintf("%dGiB", s/Gibibyte)
	case s%Mebibyte == 0:
		return fmt.Sprintf("%dMiB", s/Mebibyte)
	case s%Kibibyte == 0:
		return fmt.Sprintf("%dKiB", s/Kibibyte)
	case s%Megabyte == 0:
		return fmt.Sprintf("%dMB", s/Megabyte)
	case s%Kilobyte == 0:
		return fmt.Sprintf("%dkB", s/Kilobyte)
	}
	return fmt.Sprintf("%dB", uint64(s))
}

type sizeFlag struct{ *Size }

// FlagVar defines a Size flag with specified name, default value, and usage
// string in fs.
func FlagVar(fs *flag.FlagSet, s *Size, name string, value Size, description string) {
	*s = value
	fs.Var(&sizeFlag{s}, name, description)
}

// Get implements part of the flag.Getter interface.
func (f *sizeFlag) Get() any { return *f.Size }

// String implements part of the flag.Value interface.
func (f *sizeFlag) String() string {
	if f.Size == nil {
		return "0B"
	}
	return f.Size.String()
}

// Set implements part of the flag.Value interface.
func (f *sizeFlag) Set(s string) error {
	sz, err := Parse(s)
	if err != nil {
		return err
	}
	*f.Size = sz
	return nil
}
