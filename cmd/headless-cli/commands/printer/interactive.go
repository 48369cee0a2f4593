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

package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

type InteractivePrinter struct {
	writer       io.Writer
	profile      termenv.Profile
	checkMark    string
	questionMark string
	crossMark    string
	bangMark     termenv.Style
	arrow        termenv.Style
}

func (p *InteractivePrinter) String() *FormattedString {
	return &FormattedString{
		profile:      p.profile,
		checkMark:    p.checkMark,
		questionMark: p.questionMark,
		crossMark:    p.crossMark,
		bangMark:     p.bangMark,
		arrow:        p.arrow,
	}
}

func (p *InteractivePrinter) Print(str *FormattedString) {
	_, _ = fmt.Fprint(p.writer, str.str.String())
}

// FormattedString accumulates styled text before being printed at once.
type FormattedString struct {
	str          strings.Builder
	profile      termenv.Profile
	checkMark    string
	questionMark string
	crossMark    string
	bangMark     termenv.Style
	arrow        termenv.Style
}

func (s *FormattedString) CheckMark() *FormattedString {
	s.str.WriteString(s.checkMark)
	return s
}

func (s *FormattedString) QuestionMark() *FormattedString {
	s.str.WriteString(s.questionMark)
	return s
}

func (s *FormattedString) CrossMark() *FormattedString {
	s.str.WriteString(s.crossMark)
	return s
}

func (s *FormattedString) WarningBangMark() *FormattedString {
	s.str.WriteString(s.bangMark.Foreground(s.profile.Color("3")).String())
	return s
}

func (s *FormattedString) BlueArrow() *FormattedString {
	s.str.WriteString(s.arrow.Foreground(s.profile.Color("6")).String())
	return s
}

func (s *FormattedString) Text(str string) *FormattedString {
	s.str.WriteString(str)
	return s
}

func (s *FormattedString) SuccessText(str string) *FormattedString {
	s.str.WriteString(termenv.String(str).Foreground(s.profile.Color("2")).String())
	return s
}

func (s *FormattedString) InfoText(str string) *FormattedString {
	s.str.WriteString(termenv.String(str).Foreground(s.profile.Color("6")).String())
	return s
}

func (s *FormattedString) WarningText(str string) *FormattedString {
	s.str.WriteString(termenv.String(str).Foreground(s.profile.Color("3")).String())
	return s
}

func (s *FormattedString) DangerText(str string) *FormattedString {
	s.str.WriteString(termenv.String(str).Foreground(s.profile.Color("1")).String())
	return s
}

func (s *FormattedString) Bold(str string) *FormattedString {
	s.str.WriteString(termenv.String(str).Bold().String())
	return s
}

func (s *FormattedString) Code(str string) *FormattedString {
	s.str.WriteString("    " + termenv.String(str).Bold().String())
	return s
}

func (s *FormattedString) Pad() *FormattedString {
	s.str.WriteString("  ")
	return s
}

func (s *FormattedString) NextLine() *FormattedString {
	s.str.WriteString("\n")
	return s
}

func (s *FormattedString) NextSection() *FormattedString {
	s.str.WriteString("\n\n")
	return s
}
