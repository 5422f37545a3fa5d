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

import "testing"

func TestAccept(t *testing.T) {
	handler := RawDeclaration{
		ReturnType: "QState",
		Name:       "blinky_off",
		ParamText:  "blinky * const me, QEvt const * const e",
	}

	testCases := []struct {
		name string
		decl RawDeclaration
		spec FilterSpec
		want bool
	}{
		{
			"empty spec allows anything",
			RawDeclaration{"void", "helper", "int x"},
			FilterSpec{},
			true,
		},
		{
			"matching return type and fragment",
			handler,
			FilterSpec{
				AllowedReturnTypes:     []string{"QState"},
				RequiredParamFragments: []string{"QEvt const * const"},
			},
			true,
		},
		{
			"return type not in allow-list rejected regardless of params",
			RawDeclaration{"void", "helper", "QEvt const * const e"},
			FilterSpec{AllowedReturnTypes: []string{"QState"}},
			false,
		},
		{
			"near-miss return type spelling rejected",
			RawDeclaration{"QState*", "blinky_off", "QEvt const * const e"},
			FilterSpec{AllowedReturnTypes: []string{"QState"}},
			false,
		},
		{
			"any of several allowed return types",
			handler,
			FilterSpec{AllowedReturnTypes: []string{"void", "QState"}},
			true,
		},
		{
			"missing one fragment rejected regardless of return type",
			handler,
			FilterSpec{
				RequiredParamFragments: []string{"QEvt const * const", "QSignal sig"},
			},
			false,
		},
		{
			"fragment order does not constrain parameter order",
			handler,
			FilterSpec{
				RequiredParamFragments: []string{"QEvt const * const", "blinky * const me"},
			},
			true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Accept(tc.decl, tc.spec); got != tc.want {
				t.Errorf("Accept = %v; want %v", got, tc.want)
			}
		})
	}
}
