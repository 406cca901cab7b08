package repo

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/repkg/cli/internal/versions"
)

// indexFormatVersion is the ReaPack index format version emitted in the
// root element.
const indexFormatVersion = "1"

// CDATA wraps text in a CDATA section. Any "]]>" inside the text is split
// across two adjacent sections ("]]]]><![CDATA[>") so the document never
// contains a premature terminator.
func CDATA(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 12)
	b.WriteString("<![CDATA[")

	for i, part := range strings.Split(text, "]]>") {
		if i > 0 {
			b.WriteString("]]]]><![CDATA[>")
		}
		b.WriteString(part)
	}

	b.WriteString("]]>")
	return b.String()
}

// escapeXML escapes text for use in attribute values and element content.
func escapeXML(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return r.Replace(s)
}

// GenerateIndex serializes the resolved repository graph as the index
// document. Output is deterministic: categories, packages, versions, and
// sources are emitted in sorted order.
func (r *Repository) GenerateIndex(w io.Writer) error {
	var b strings.Builder

	b.WriteString("<?xml version=\"1.1\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&b, "<index version=\"%s\" name=\"%s\">\n", indexFormatVersion, escapeXML(r.Identifier))

	if r.Desc != "" {
		b.WriteString("  <metadata>\n")
		b.WriteString("    <description>")
		b.WriteString(CDATA(r.Desc))
		b.WriteString("</description>\n")
		b.WriteString("  </metadata>\n")
	}

	for _, category := range r.categories() {
		fmt.Fprintf(&b, "  <category name=\"%s\">\n", escapeXML(category))
		for _, pkg := range r.packagesInCategory(category) {
			writePackage(&b, pkg)
		}
		b.WriteString("  </category>\n")
	}

	b.WriteString("</index>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// categories returns the distinct normalized category paths, sorted.
func (r *Repository) categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, pkg := range r.Packages {
		if !seen[pkg.Category] {
			seen[pkg.Category] = true
			out = append(out, pkg.Category)
		}
	}
	sort.Strings(out)
	return out
}

// packagesInCategory returns the packages of one category, sorted by
// identifier.
func (r *Repository) packagesInCategory(category string) []*Package {
	var out []*Package
	for _, pkg := range r.Packages {
		if pkg.Category == category {
			out = append(out, pkg)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Identifier < out[j].Identifier })
	return out
}

func writePackage(b *strings.Builder, pkg *Package) {
	fmt.Fprintf(b, "    <reapack desc=\"%s\" type=\"%s\" name=\"%s\">\n",
		escapeXML(pkg.Name), escapeXML(pkg.Type.String()), escapeXML(pkg.Identifier))

	if pkg.Desc != "" {
		b.WriteString("      <metadata>\n")
		b.WriteString("        <description>")
		b.WriteString(CDATA(pkg.Desc))
		b.WriteString("</description>\n")
		b.WriteString("      </metadata>\n")
	}

	sorted := make([]*Version, len(pkg.Versions))
	copy(sorted, pkg.Versions)
	sort.Slice(sorted, func(i, j int) bool {
		return versions.Compare(sorted[i].Name, sorted[j].Name) < 0
	})
	for _, version := range sorted {
		writeVersion(b, version)
	}

	b.WriteString("    </reapack>\n")
}

func writeVersion(b *strings.Builder, v *Version) {
	fmt.Fprintf(b, "      <version name=\"%s\" author=\"%s\" time=\"%s\">\n",
		escapeXML(v.Name), escapeXML(v.Author), escapeXML(v.Time.Format(time.RFC3339)))

	if v.Changelog != "" {
		b.WriteString("        <changelog>")
		b.WriteString(CDATA(v.Changelog))
		b.WriteString("</changelog>\n")
	}

	sorted := make([]*Source, len(v.Sources))
	copy(sorted, v.Sources)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].RelToRepo < sorted[j].RelToRepo })
	for _, source := range sorted {
		writeSource(b, source)
	}

	b.WriteString("      </version>\n")
}

func writeSource(b *strings.Builder, s *Source) {
	fmt.Fprintf(b, "        <source file=\"%s\"", escapeXML(s.File))

	if len(s.Sections) > 0 {
		tokens := make([]string, len(s.Sections))
		for i, section := range s.Sections {
			tokens[i] = section.String()
		}
		fmt.Fprintf(b, " main=\"%s\"", escapeXML(strings.Join(tokens, " ")))
	}

	b.WriteString(">")
	b.WriteString(escapeXML(s.URL))
	b.WriteString("</source>\n")
}
