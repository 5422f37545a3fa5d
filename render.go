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
	"fmt"
	"strings"
)

// Render produces the header and source sections for one enumerated
// header file. The header text declares the enum (member = bit index,
// sentinel last) and the query function; the source text implements the
// query function by OR-accumulating QASM_IS_IN checks shifted to each
// handler's bit position. Deterministic: the same definition renders to
// byte-identical text.
func Render(def *EnumDefinition, baseName string) (headerText, sourceText string) {
	var h strings.Builder
	fmt.Fprintf(&h, "typedef enum %s {\n", def.Name)
	for _, m := range def.Members {
		fmt.Fprintf(&h, "    %s = %d,\n", strings.ToUpper(m.Name), m.BitIndex)
	}
	fmt.Fprintf(&h, "    %s\n", def.SentinelName)
	fmt.Fprintf(&h, "} %s_t;\n", def.Name)
	h.WriteString("\n")
	fmt.Fprintf(&h, "uint64_t %s_get_current_state(QAsm const * const state_machine);\n", baseName)

	var s strings.Builder
	fmt.Fprintf(&s, "uint64_t %s_get_current_state(QAsm const * const state_machine) {\n", baseName)
	s.WriteString("    uint64_t current_state = 0;\n")
	for _, m := range def.Members {
		fmt.Fprintf(&s, "    current_state |= ((uint64_t) QASM_IS_IN(state_machine, %s) << %s);\n", m.Name, strings.ToUpper(m.Name))
	}
	s.WriteString("    return current_state;\n")
	s.WriteString("}\n")

	return h.String(), s.String()
}
