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

// maskWidth is the number of usable bit positions in the generated
// uint64_t state mask.
const maskWidth = 64

// HandlerRecord is one accepted state-handler declaration with its
// assigned bit position.
type HandlerRecord struct {
	Name     string
	BitIndex uint
}

// EnumDefinition is the enumeration derived from one header: the accepted
// handlers in source order plus a trailing sentinel whose value equals the
// handler count. Never mutated after creation.
type EnumDefinition struct {
	Name         string
	Members      []HandlerRecord
	SentinelName string
}

// Enumerate scans headerText, filters the declarations through spec and
// assigns bit indices 0, 1, 2, ... in source order. The indices within one
// header are dense and unique. It returns (nil, nil) when no declaration
// is accepted; the caller must then skip emission for this header
// entirely. More than 64 accepted handlers cannot be represented in the
// mask and is an error.
func Enumerate(headerText, enumName string, spec FilterSpec) (*EnumDefinition, error) {
	var members []HandlerRecord
	for _, decl := range Scan(headerText) {
		if !Accept(decl, spec) {
			continue
		}
		members = append(members, HandlerRecord{Name: decl.Name, BitIndex: uint(len(members))})
	}
	if len(members) == 0 {
		return nil, nil
	}
	if len(members) > maskWidth {
		return nil, fmt.Errorf("%s: %d handlers exceed the %d-bit state mask", enumName, len(members), maskWidth)
	}
	return &EnumDefinition{
		Name:         enumName,
		Members:      members,
		SentinelName: strings.ToUpper(enumName) + "_NUMBER_OF_VALUES",
	}, nil
}
