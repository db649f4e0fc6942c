package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var slidePath = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// DOCX returns the text of word/document.xml: w:t runs, one line per w:p,
// w:tab as a tab.
func DOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			var sb strings.Builder
			if err := readRuns(f, &sb, runSpec{text: "t", paragraph: "p", tab: "tab"}); err != nil {
				return "", fmt.Errorf("read docx body: %w", err)
			}
			return sb.String(), nil
		}
	}
	return "", errors.New("word/document.xml not found")
}

// PPTX returns the text of every slide in slide order: a:t runs, one line per a:p.
func PPTX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pptx: %w", err)
	}

	type slide struct {
		n int
		f *zip.File
	}
	var slides []slide
	for _, f := range zr.File {
		m := slidePath.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		n, _ := strconv.Atoi(m[1])
		slides = append(slides, slide{n: n, f: f})
	}
	if len(slides) == 0 {
		return "", errors.New("no slides found")
	}
	sort.Slice(slides, func(i, j int) bool { return slides[i].n < slides[j].n })

	var sb strings.Builder
	for _, s := range slides {
		if err := readRuns(s.f, &sb, runSpec{text: "t", paragraph: "p"}); err != nil {
			return "", fmt.Errorf("read slide %d: %w", s.n, err)
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// runSpec names the local elements that carry text, end a paragraph and
// insert a tab. Namespaces are ignored.
type runSpec struct {
	text      string
	paragraph string
	tab       string
}

func readRuns(f *zip.File, sb *strings.Builder, spec runSpec) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	dec := xml.NewDecoder(rc)
	inText := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case spec.text:
				inText = true
			case spec.tab:
				sb.WriteString("\t")
			case "tabs":
				// tab stop definitions, not content
				if err := dec.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case spec.text:
				inText = false
			case spec.paragraph:
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
}
