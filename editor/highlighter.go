//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package editor

import (
	gott "github.com/timburks/tiny/types"
)

// The Highlighter assigns a color to every character of a buffer.
// Colors are stored in document order with no entries for line breaks.
type Highlighter struct {
	colors []gott.Color
}

func NewHighlighter() *Highlighter {
	return &Highlighter{colors: make([]gott.Color, 0)}
}

func (h *Highlighter) Colors() []gott.Color {
	return h.colors
}

// resize the color buffer to n entries, resetting all of them if the size changed
func (h *Highlighter) resize(n int) {
	if len(h.colors) != n {
		h.colors = make([]gott.Color, n)
	}
}

// Highlight recolors the whole buffer. The string state carries across
// rows, so an unterminated quote colors the following rows as well.
func (h *Highlighter) Highlight(b *Buffer) []gott.Color {
	h.resize(b.CharacterCount())
	c := 0
	insideString := false
	for _, r := range b.rows {
		for _, ch := range r.Text {
			h.colors[c] = classify(ch)
			if ch == '"' {
				insideString = !insideString
				h.colors[c] = gott.ColorString
			}
			if insideString {
				h.colors[c] = gott.ColorString
			}
			c++
		}
	}
	return h.colors
}

// later checks take precedence
func classify(ch rune) gott.Color {
	color := gott.ColorDefault
	switch ch {
	case '(', ')', '[', ']', '{', '}':
		color = gott.ColorBracket
	case '-', '+', '/', '*', '^', '%', '=':
		color = gott.ColorOperator
	}
	if ch >= '0' && ch <= '9' {
		color = gott.ColorNumber
	}
	return color
}
