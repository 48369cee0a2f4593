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

package headless

// Value is a JSON value sent to the headless service in a request body. The
// set of implementations is closed: Int, String, Bool, List and Dict. Values
// are serialised untagged, so the receiver never sees which variant produced
// a given JSON value.
type Value interface {
	isValue()
}

type (
	Int    uint32
	String string
	Bool   bool
	List   []Value
	Dict   map[string]Value
)

func (Int) isValue()    {}
func (String) isValue() {}
func (Bool) isValue()   {}
func (List) isValue()   {}
func (Dict) isValue()   {}

func NewInt(i uint32) Value {
	return Int(i)
}

func NewString(s string) Value {
	return String(s)
}

func NewBool(b bool) Value {
	return Bool(b)
}

func NewList(values ...Value) Value {
	l := make(List, 0, len(values))
	return append(l, values...)
}

func NewStringList(values []string) Value {
	l := make(List, 0, len(values))
	for _, v := range values {
		l = append(l, String(v))
	}
	return l
}

func NewDict() Dict {
	return Dict{}
}

func (d Dict) Set(key string, v Value) Dict {
	d[key] = v
	return d
}

// SetOptionalString inserts the key only when v is set. Omitting a key is not
// the same as sending an empty value: the service applies its own defaults to
// absent keys.
func (d Dict) SetOptionalString(key string, v *string) Dict {
	if v != nil {
		d[key] = String(*v)
	}
	return d
}

func (d Dict) SetOptionalInt(key string, v *uint32) Dict {
	if v != nil {
		d[key] = Int(*v)
	}
	return d
}

func (d Dict) SetOptionalBool(key string, v *bool) Dict {
	if v != nil {
		d[key] = Bool(*v)
	}
	return d
}

// SetOptionalStrings inserts the key when values is not nil. An empty but
// non-nil slice is sent as an empty list.
func (d Dict) SetOptionalStrings(key string, values []string) Dict {
	if values != nil {
		d[key] = NewStringList(values)
	}
	return d
}
