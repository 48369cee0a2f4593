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
	"fmt"
)

type FlagError struct {
	message string
}

func (f FlagError) Error() string {
	return f.message
}

func MustBeSpecifiedError(name string) error {
	return FlagError{
		message: fmt.Sprintf("--%s flag must be specified", name),
	}
}

func ArgMustBeSpecifiedError(name string) error {
	return FlagError{
		message: fmt.Sprintf("%s argument must be specified", name),
	}
}

func TooManyArgsError(names ...string) error {
	return FlagError{
		message: fmt.Sprintf("too many arguments specified, only expect: %v", names),
	}
}

func InvalidFlagFormatError(name string) error {
	return FlagError{
		message: fmt.Sprintf("--%s flag has not a valid format", name),
	}
}

func InvalidArgFormatError(name string) error {
	return FlagError{
		message: fmt.Sprintf("%s argument has not a valid format", name),
	}
}

func UnsupportedFlagValueError(name string, unsupported interface{}, supported []interface{}) error {
	return FlagError{
		message: fmt.Sprintf("unsupported value %q for --%s flag, only accept %v", unsupported, name, supported),
	}
}
