package cv

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: DocumentDOCX, Message: "failed to open", Cause: err}
	}
	defer doc.Close()

	paragraphs, err := docxParagraphs(doc.Editable().GetContent())
	if err != nil {
		return "", &ExtractionError{Format: DocumentDOCX, Message: "malformed document.xml", Cause: err}
	}
	return strings.Join(paragraphs, "\n"), nil
}

// docxParagraphs returns the text of every non-empty w:p element of a
// WordprocessingML body, in document order. Runs are concatenated, w:tab
// becomes a tab and w:br/w:cr a newline.
func docxParagraphs(body string) ([]string, error) {
	dec := xml.NewDecoder(strings.NewReader(body))
	dec.Strict = false

	var (
		out    []string
		stack  []*strings.Builder
		inText bool
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return out, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				stack = append(stack, &strings.Builder{})
			case "t":
				inText = true
			case "tab":
				if len(stack) > 0 {
					stack[len(stack)-1].WriteByte('\t')
				}
			case "br", "cr":
				if len(stack) > 0 {
					stack[len(stack)-1].WriteByte('\n')
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if len(stack) == 0 {
					continue
				}
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if strings.TrimSpace(p.String()) != "" {
					out = append(out, p.String())
				}
			}
		case xml.CharData:
			if inText && len(stack) > 0 {
				stack[len(stack)-1].Write(t)
			}
		}
	}
	return out, nil
}
