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

	"github.com/spf13/pflag"
)

// OptionalString is a flag that remembers whether it was set. An unset flag
// yields a nil pointer, which is not the same as an empty string.
type OptionalString struct {
	value *string
}

func (o *OptionalString) Set(s string) error {
	o.value = &s
	return nil
}

func (o *OptionalString) String() string {
	if o.value == nil {
		return ""
	}
	return *o.value
}

func (o *OptionalString) Type() string {
	return "string"
}

func (o *OptionalString) Get() *string {
	return o.value
}

type OptionalUint32 struct {
	name  string
	value *uint32
}

func (o *OptionalUint32) Set(s string) error {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return InvalidFlagFormatError(o.name)
	}
	v := uint32(n)
	o.value = &v
	return nil
}

func (o *OptionalUint32) String() string {
	if o.value == nil {
		return ""
	}
	return strconv.FormatUint(uint64(*o.value), 10)
}

func (o *OptionalUint32) Type() string {
	return "uint32"
}

func (o *OptionalUint32) Get() *uint32 {
	return o.value
}

// OptionalBool accepts `--flag`, `--flag=true` and `--flag=false`.
type OptionalBool struct {
	name  string
	value *bool
}

func (o *OptionalBool) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return InvalidFlagFormatError(o.name)
	}
	o.value = &b
	return nil
}

func (o *OptionalBool) String() string {
	if o.value == nil {
		return ""
	}
	return strconv.FormatBool(*o.value)
}

func (o *OptionalBool) Type() string {
	return "bool"
}

func (o *OptionalBool) Get() *bool {
	return o.value
}

func OptionalStringVar(fs *pflag.FlagSet, o *OptionalString, name, usage string) {
	OptionalStringVarP(fs, o, name, "", usage)
}

func OptionalStringVarP(fs *pflag.FlagSet, o *OptionalString, name, shorthand, usage string) {
	fs.VarP(o, name, shorthand, usage)
}

func OptionalUint32Var(fs *pflag.FlagSet, o *OptionalUint32, name, usage string) {
	OptionalUint32VarP(fs, o, name, "", usage)
}

func OptionalUint32VarP(fs *pflag.FlagSet, o *OptionalUint32, name, shorthand, usage string) {
	o.name = name
	fs.VarP(o, name, shorthand, usage)
}

func OptionalBoolVar(fs *pflag.FlagSet, o *OptionalBool, name, usage string) {
	OptionalBoolVarP(fs, o, name, "", usage)
}

func OptionalBoolVarP(fs *pflag.FlagSet, o *OptionalBool, name, shorthand, usage string) {
	o.name = name
	fs.VarP(o, name, shorthand, usage)
	fs.Lookup(name).NoOptDefVal = "true"
}
