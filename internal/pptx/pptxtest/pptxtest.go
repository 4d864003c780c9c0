// Package pptxtest builds minimal .pptx packages for tests.
package pptxtest

import (
	"archive/zip"
	"fmt"
	"html"
	"os"
	"strings"
	"testing"
)

const (
	nsP   = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsA   = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsR   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsRel = "http://schemas.openxmlformats.org/package/2006/relationships"
)

// Slide describes the content of one generated slide. Empty fields are omitted.
type Slide struct {
	Title string
	// Body paragraphs go into a single text box.
	Body []string
	// Table rows go into a graphic frame after the body.
	Table [][]string
	// Group paragraphs go into a text box nested inside a group shape.
	Group []string
	// Picture adds a picture element, which carries no text.
	Picture bool
}

// Write creates a package at path with the given slides in order.
func Write(tb testing.TB, path string, slides ...Slide) {
	tb.Helper()
	parts := make(map[string]string, len(slides)+2)
	for i, s := range slides {
		parts[fmt.Sprintf("ppt/slides/slide%d.xml", i+1)] = SlideXML(s)
	}
	parts["ppt/presentation.xml"] = PresentationXML(len(slides))
	parts["ppt/_rels/presentation.xml.rels"] = PresentationRels(len(slides))
	WriteParts(tb, path, parts)
}

// WriteParts writes raw package parts. Use it to build unusual packages.
func WriteParts(tb testing.TB, path string, parts map[string]string) {
	tb.Helper()
	f, err := os.Create(path)
	if err != nil {
		tb.Fatalf("create pptx: %v", err)
	}
	zw := zip.NewWriter(f)
	for name, body := range parts {
		w, err := zw.Create(name)
		if err != nil {
			tb.Fatalf("create part %s: %v", name, err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			tb.Fatalf("write part %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		tb.Fatalf("close zip: %v", err)
	}
	if err := f.Close(); err != nil {
		tb.Fatalf("close pptx: %v", err)
	}
}

// PresentationXML lists n slides with relationship ids rId1..rIdN.
func PresentationXML(n int) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	fmt.Fprintf(&b, `<p:presentation xmlns:p="%s" xmlns:r="%s"><p:sldIdLst>`, nsP, nsR)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, `<p:sldId id="%d" r:id="rId%d"/>`, 255+i, i)
	}
	b.WriteString(`</p:sldIdLst></p:presentation>`)
	return b.String()
}

// PresentationRels maps rIdN to slides/slideN.xml.
func PresentationRels(n int) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	fmt.Fprintf(&b, `<Relationships xmlns="%s">`, nsRel)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="%s/slide" Target="slides/slide%d.xml"/>`, i, nsR, i)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

// SlideXML renders a slide part.
func SlideXML(s Slide) string {
	var shapes strings.Builder
	id := 2
	if s.Title != "" {
		shapes.WriteString(TitleShapeXML(id, strings.Split(s.Title, "\n")...))
		id++
	}
	if len(s.Body) > 0 {
		shapes.WriteString(TextShapeXML(id, s.Body...))
		id++
	}
	if len(s.Table) > 0 {
		shapes.WriteString(TableXML(id, s.Table))
		id++
	}
	if len(s.Group) > 0 {
		fmt.Fprintf(&shapes, `<p:grpSp><p:nvGrpSpPr><p:cNvPr id="%d" name="Group"/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>`, id)
		shapes.WriteString(TextShapeXML(id+1, s.Group...))
		shapes.WriteString(`</p:grpSp>`)
		id += 2
	}
	if s.Picture {
		fmt.Fprintf(&shapes, `<p:pic><p:nvPicPr><p:cNvPr id="%d" name="Picture"/><p:cNvPicPr/><p:nvPr/></p:nvPicPr></p:pic>`, id)
	}
	return SlideXMLWithShapes(shapes.String())
}

// SlideXMLWithShapes wraps raw shape-tree children in a slide part.
func SlideXMLWithShapes(shapes string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		fmt.Sprintf(`<p:sld xmlns:a="%s" xmlns:p="%s" xmlns:r="%s">`, nsA, nsP, nsR) +
		`<p:cSld><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>` +
		shapes +
		`</p:spTree></p:cSld></p:sld>`
}

// TitleShapeXML renders a title placeholder with the given paragraphs.
func TitleShapeXML(id int, paragraphs ...string) string {
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="Title"/><p:cNvSpPr/><p:nvPr><p:ph type="title"/></p:nvPr></p:nvSpPr><p:spPr/>%s</p:sp>`,
		id, txBody(paragraphs))
}

// TextShapeXML renders a plain text box with the given paragraphs.
func TextShapeXML(id int, paragraphs ...string) string {
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="TextBox"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr><p:spPr/>%s</p:sp>`,
		id, txBody(paragraphs))
}

// TableXML renders a graphic frame holding a table.
func TableXML(id int, rows [][]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<p:graphicFrame><p:nvGraphicFramePr><p:cNvPr id="%d" name="Table"/><p:cNvGraphicFramePr/><p:nvPr/></p:nvGraphicFramePr><p:xfrm/>`, id)
	fmt.Fprintf(&b, `<a:graphic><a:graphicData uri="%s/table"><a:tbl><a:tblGrid/>`, nsA)
	for _, row := range rows {
		b.WriteString(`<a:tr h="0">`)
		for _, cell := range row {
			b.WriteString(`<a:tc>`)
			b.WriteString(strings.ReplaceAll(txBody([]string{cell}), "p:txBody", "a:txBody"))
			b.WriteString(`</a:tc>`)
		}
		b.WriteString(`</a:tr>`)
	}
	b.WriteString(`</a:tbl></a:graphicData></a:graphic></p:graphicFrame>`)
	return b.String()
}

func txBody(paragraphs []string) string {
	var b strings.Builder
	b.WriteString(`<p:txBody><a:bodyPr/><a:lstStyle/>`)
	for _, p := range paragraphs {
		if p == "" {
			b.WriteString(`<a:p/>`)
			continue
		}
		fmt.Fprintf(&b, `<a:p><a:r><a:rPr lang="en-US"/><a:t>%s</a:t></a:r></a:p>`, html.EscapeString(p))
	}
	b.WriteString(`</p:txBody>`)
	return b.String()
}
