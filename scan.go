/*
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qpsnapshot

import (
	"regexp"
	"strings"
)

// RawDeclaration is one textual function-declaration match from a header.
// ReturnType and ParamText are normalized (see NormalizeReturnType and
// NormalizeParamText) before the declaration reaches the filter.
type RawDeclaration struct {
	ReturnType string
	Name       string
	ParamText  string
}

// Best-effort recognition of a C function declaration: a return-type token
// run, an identifier, a parenthesized parameter list and a terminating
// semicolon with no '{' in between (so definitions are excluded). This is
// a textual heuristic, not a grammar; exotic declarations (macros,
// function pointers returned by value) are allowed to slip through as
// false negatives.
var declPattern = regexp.MustCompile(`\b([\w\s*()]+?)\s+(\w+)\s*\(([^;{]*)\)\s*;`)

var wsRun = regexp.MustCompile(`\s+`)

// Scan returns every candidate declaration in headerText, in the order the
// declarations physically appear. The pattern is applied to the whole text
// at once, so parameter lists wrapped across lines still match. No matches
// yields an empty slice, not an error.
func Scan(headerText string) []RawDeclaration {
	matches := declPattern.FindAllStringSubmatch(headerText, -1)
	decls := make([]RawDeclaration, 0, len(matches))
	for _, m := range matches {
		decls = append(decls, RawDeclaration{
			ReturnType: NormalizeReturnType(m[1]),
			Name:       m[2],
			ParamText:  NormalizeParamText(m[3]),
		})
	}
	return decls
}

// NormalizeReturnType collapses whitespace runs to single spaces and folds
// a space before '*' into the pointer ("char *" becomes "char*").
// Idempotent.
func NormalizeReturnType(s string) string {
	return strings.ReplaceAll(strings.Join(strings.Fields(s), " "), " *", "*")
}

// NormalizeParamText collapses embedded newlines, tabs and space runs to
// single spaces and trims. Pointer spacing is kept as written so that a
// fragment like "QEvt const * const" matches a line-wrapped parameter
// list. Idempotent.
func NormalizeParamText(s string) string {
	return strings.TrimSpace(wsRun.ReplaceAllString(s, " "))
}
