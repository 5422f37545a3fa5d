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
	"path/filepath"
	"strings"
)

const (
	bannerRule  = "/************************************************************/"
	sectionRule = "// ================================================================================"
)

// Generator accumulates the generated header and source texts for one run.
// Sections are appended in AddHeader call order; the caller chooses a
// deterministic order (sorted discovery order) before feeding headers in.
// The Generator performs no I/O.
type Generator struct {
	spec   FilterSpec
	header strings.Builder
	source strings.Builder
}

// NewGenerator seeds both accumulators with the generation banner and the
// include preambles: "qpc.h" in the header file, the generated header in
// the source file. date is the creation date stamped into the banner; it
// is supplied by the caller so that generation itself stays deterministic.
func NewGenerator(outputBase, date string, spec FilterSpec) *Generator {
	g := &Generator{spec: spec}

	g.header.WriteString(bannerRule + "\n")
	g.header.WriteString("// Automatically generated C header file\n")
	g.header.WriteString("// Date created: " + date + "\n")
	g.header.WriteString(bannerRule + "\n\n")
	g.header.WriteString("#include \"qpc.h\"\n")

	g.source.WriteString(bannerRule + "\n")
	g.source.WriteString("// Automatically generated C source file\n")
	g.source.WriteString("// Date created: " + date + "\n")
	g.source.WriteString(bannerRule + "\n\n")
	g.source.WriteString("#include \"" + filepath.Base(outputBase) + ".h\"\n")

	return g
}

// AddHeader processes one header file's content. The per-header divider is
// written to both accumulators unconditionally; when no declaration passes
// the filter the header is skipped (skipped=true) and nothing further is
// emitted for it. A header whose accepted handlers overflow the mask width
// is an error.
func (g *Generator) AddHeader(path string, content []byte) (skipped bool, err error) {
	name := filepath.Base(path)
	base := strings.TrimSuffix(name, filepath.Ext(name))

	divider := "\n\n" + sectionRule + "\n" +
		fmt.Sprintf("// State machine from file \"%s\"\n", name) +
		sectionRule + "\n\n"
	g.header.WriteString(divider)
	g.source.WriteString(divider)

	def, err := Enumerate(string(content), "snapshot_"+base, g.spec)
	if err != nil {
		return false, err
	}
	if def == nil {
		return true, nil
	}

	headerText, sourceText := Render(def, base)
	g.header.WriteString(headerText)
	g.header.WriteString("\n")
	g.source.WriteString(sourceText)
	return false, nil
}

// Header returns the accumulated header-file text.
func (g *Generator) Header() string {
	return g.header.String()
}

// Source returns the accumulated source-file text.
func (g *Generator) Source() string {
	return g.source.String()
}
