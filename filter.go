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

import "strings"

// FilterSpec selects which scanned declarations count as state handlers.
// An empty AllowedReturnTypes list allows any return type; a non-empty
// list requires an exact match against the normalized return type (a
// near-miss spelling is rejected, not guessed at). Every entry of
// RequiredParamFragments must occur as a literal substring of the
// normalized parameter text; fragment order does not constrain order in
// the parameter list.
type FilterSpec struct {
	AllowedReturnTypes     []string
	RequiredParamFragments []string
}

// Accept reports whether decl matches spec. Pure predicate.
func Accept(decl RawDeclaration, spec FilterSpec) bool {
	if len(spec.AllowedReturnTypes) > 0 {
		allowed := false
		for _, rt := range spec.AllowedReturnTypes {
			if decl.ReturnType == rt {
				allowed = true
				break
			}
		}
		if !allowed {
			return false
		}
	}
	for _, frag := range spec.RequiredParamFragments {
		if !strings.Contains(decl.ParamText, frag) {
			return false
		}
	}
	return true
}
