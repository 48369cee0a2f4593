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

package cli

import (
	"bytes"
	"strings"
	"text/template"
)

const Software = "headless-cli"

var templateValues = struct {
	Software string
}{
	Software: Software,
}

// LongDesc normalizes a command's long description: the common indentation
// is removed and the template variables are substituted.
func LongDesc(s string) string {
	if len(s) == 0 {
		return s
	}
	return render(dedent(s))
}

// Examples normalizes a command's examples and indents them by two spaces.
func Examples(s string) string {
	if len(s) == 0 {
		return s
	}

	lines := strings.Split(render(dedent(s)), "\n")
	for i, line := range lines {
		if len(line) != 0 {
			lines[i] = "  " + line
		}
	}
	return strings.Join(lines, "\n")
}

func dedent(s string) string {
	lines := strings.Split(strings.Trim(s, "\n"), "\n")

	indent := -1
	for _, line := range lines {
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent == -1 || n < indent {
			indent = n
		}
	}

	for i, line := range lines {
		if len(line) >= indent && indent > 0 {
			lines[i] = line[indent:]
		} else {
			lines[i] = strings.TrimSpace(line)
		}
	}

	return strings.TrimRight(strings.Join(lines, "\n"), " \t\n")
}

func render(s string) string {
	t := template.Must(template.New("doc").Parse(s))
	buf := &bytes.Buffer{}
	if err := t.Execute(buf, templateValues); err != nil {
		panic(err)
	}
	return buf.String()
}
