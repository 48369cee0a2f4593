// Copyright (C) 2023  Gobalsky Labs Limited
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package flags

import (
	"strconv"
)

// ParseUint32Arg parses a positional argument as an unsigned 32-bit integer.
func ParseUint32Arg(name, value string) (uint32, error) {
	if len(value) == 0 {
		return 0, ArgMustBeSpecifiedError(name)
	}
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, InvalidArgFormatError(name)
	}
	return uint32(n), nil
}

// RequireArgs maps positional arguments to names, failing when one is
// missing or when there are too many.
func RequireArgs(args []string, names ...string) error {
	if len(args) > len(names) {
		return TooManyArgsError(names...)
	}
	for i, name := range names {
		if i >= len(args) || len(args[i]) == 0 {
			return ArgMustBeSpecifiedError(name)
		}
	}
	return nil
}
