// Package pptx reads PowerPoint Open XML (.pptx) packages into a deck.Presentation.
package pptx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/hyperifyio/gotimeline/internal/deck"
)

const (
	presentationPart = "ppt/presentation.xml"
	presentationRels = "ppt/_rels/presentation.xml.rels"
)

var slidePartRe = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// node is a generic XML element. Shape trees interleave several element
// kinds whose relative order matters, which typed structs would lose.
type node struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Nodes   []node     `xml:",any"`
	Text    string     `xml:",chardata"`
}

func (n *node) child(local string) *node {
	for i := range n.Nodes {
		if n.Nodes[i].XMLName.Local == local {
			return &n.Nodes[i]
		}
	}
	return nil
}

func (n *node) path(locals ...string) *node {
	cur := n
	for _, l := range locals {
		if cur = cur.child(l); cur == nil {
			return nil
		}
	}
	return cur
}

// attr returns an unqualified attribute.
func (n *node) attr(local string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Space == "" && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// qualifiedAttr returns a namespaced attribute such as r:id.
func (n *node) qualifiedAttr(local string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Space != "" && a.Name.Space != "xmlns" && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// Open reads the presentation stored at path.
func Open(path string) (deck.Presentation, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return deck.Presentation{}, fmt.Errorf("open pptx: %w", err)
	}
	defer zr.Close()
	return Read(&zr.Reader)
}

// Read parses an already opened package. Slides come back in presentation
// order; shapes keep their document order.
func Read(zr *zip.Reader) (deck.Presentation, error) {
	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[f.Name] = f
	}
	names, err := slideOrder(files)
	if err != nil {
		return deck.Presentation{}, err
	}
	p := deck.Presentation{Slides: make([]deck.Slide, 0, len(names))}
	for _, name := range names {
		root, err := parsePart(files[name])
		if err != nil {
			return deck.Presentation{}, fmt.Errorf("parse slide %s: %w", name, err)
		}
		p.Slides = append(p.Slides, slideFrom(root))
	}
	return p, nil
}

func parsePart(f *zip.File) (*node, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	dec := xml.NewDecoder(rc)
	dec.CharsetReader = charset.NewReaderLabel
	var root node
	if err := dec.Decode(&root); err != nil {
		return nil, err
	}
	return &root, nil
}

// slideOrder resolves the slide list of presentation.xml through its
// relationships. Packages without a usable list fall back to numeric
// ordering of ppt/slides/slideN.xml.
func slideOrder(files map[string]*zip.File) ([]string, error) {
	presFile, okPres := files[presentationPart]
	relsFile, okRels := files[presentationRels]
	if okPres && okRels {
		pres, err := parsePart(presFile)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", presentationPart, err)
		}
		rels, err := parsePart(relsFile)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", presentationRels, err)
		}
		targets := make(map[string]string)
		for i := range rels.Nodes {
			rel := &rels.Nodes[i]
			if rel.XMLName.Local != "Relationship" {
				continue
			}
			id, _ := rel.attr("Id")
			target, _ := rel.attr("Target")
			if id != "" && target != "" {
				targets[id] = resolveTarget("ppt", target)
			}
		}
		var names []string
		if lst := pres.child("sldIdLst"); lst != nil {
			for i := range lst.Nodes {
				sid := &lst.Nodes[i]
				if sid.XMLName.Local != "sldId" {
					continue
				}
				rid, _ := sid.qualifiedAttr("id")
				name, ok := targets[rid]
				if !ok {
					continue
				}
				if _, exists := files[name]; exists {
					names = append(names, name)
				}
			}
		}
		if len(names) > 0 {
			return names, nil
		}
	}
	return numberedSlides(files), nil
}

func resolveTarget(base, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(base, target)
}

func numberedSlides(files map[string]*zip.File) []string {
	type numbered struct {
		name string
		n    int
	}
	var found []numbered
	for name := range files {
		m := slidePartRe.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		found = append(found, numbered{name: name, n: n})
	}
	sort.Slice(found, func(i, j int) bool { return found[i].n < found[j].n })
	names := make([]string, 0, len(found))
	for _, f := range found {
		names = append(names, f.name)
	}
	return names
}

func slideFrom(root *node) deck.Slide {
	var s deck.Slide
	tree := root.path("cSld", "spTree")
	if tree == nil {
		return s
	}
	titleSeen := false
	for i := range tree.Nodes {
		n := &tree.Nodes[i]
		sh, ok := shapeFrom(n)
		if !ok {
			continue
		}
		s.Shapes = append(s.Shapes, sh)
		// Only the first index-0 placeholder is the title, even when it
		// turns out to have no text body.
		if !titleSeen && isTitlePlaceholder(n) {
			titleSeen = true
			if ts, ok := sh.(deck.TextShape); ok {
				s.Title = &ts
			}
		}
	}
	return s
}

func isTitlePlaceholder(n *node) bool {
	for i := range n.Nodes {
		c := &n.Nodes[i]
		if !strings.HasPrefix(c.XMLName.Local, "nv") {
			continue
		}
		ph := c.path("nvPr", "ph")
		if ph == nil {
			return false
		}
		idx, ok := ph.attr("idx")
		return !ok || idx == "0"
	}
	return false
}

// shapeFrom maps a shape-tree element onto a deck variant. Non-shape
// elements (group properties, extension lists) report false.
func shapeFrom(n *node) (deck.Shape, bool) {
	switch n.XMLName.Local {
	case "sp":
		if body := n.child("txBody"); body != nil {
			return deck.TextShape{Paragraphs: paragraphs(body)}, true
		}
		return deck.OtherShape{Kind: "sp"}, true
	case "grpSp":
		g := deck.GroupShape{}
		for i := range n.Nodes {
			if sh, ok := shapeFrom(&n.Nodes[i]); ok {
				g.Shapes = append(g.Shapes, sh)
			}
		}
		return g, true
	case "graphicFrame":
		if tbl := n.path("graphic", "graphicData", "tbl"); tbl != nil {
			return table(tbl), true
		}
		return deck.OtherShape{Kind: "graphicFrame"}, true
	case "pic", "cxnSp", "contentPart", "AlternateContent":
		return deck.OtherShape{Kind: n.XMLName.Local}, true
	}
	return nil, false
}

func paragraphs(body *node) []string {
	var out []string
	for i := range body.Nodes {
		if body.Nodes[i].XMLName.Local == "p" {
			out = append(out, paragraphText(&body.Nodes[i]))
		}
	}
	return out
}

func paragraphText(p *node) string {
	var b strings.Builder
	for i := range p.Nodes {
		c := &p.Nodes[i]
		switch c.XMLName.Local {
		case "r", "fld":
			if t := c.child("t"); t != nil {
				b.WriteString(t.Text)
			}
		case "br":
			b.WriteString("\v")
		}
	}
	return b.String()
}

func table(tbl *node) deck.TableShape {
	var t deck.TableShape
	for i := range tbl.Nodes {
		tr := &tbl.Nodes[i]
		if tr.XMLName.Local != "tr" {
			continue
		}
		var row []string
		for j := range tr.Nodes {
			tc := &tr.Nodes[j]
			if tc.XMLName.Local != "tc" {
				continue
			}
			cell := ""
			if body := tc.child("txBody"); body != nil {
				cell = strings.Join(paragraphs(body), "\n")
			}
			row = append(row, cell)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
