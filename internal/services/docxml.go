package services

import (
	"encoding/xml"
	"io"
	"strings"
)

// extractDocumentXML walks a WordprocessingML document body and
// collects its text. All paragraph texts come first, each followed by
// a newline, in document order; every table's cell texts are appended
// after them, row-major, each followed by a space. Tables land after
// the paragraphs regardless of where they sit in the source document;
// callers depend on that ordering.
func extractDocumentXML(documentXML string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(documentXML))

	var paragraphs []string
	var cells []string

	tableDepth := 0
	inParagraph := false
	inCell := false
	inText := false

	var paragraph strings.Builder
	var cell strings.Builder

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
			case "p":
				if tableDepth == 0 {
					inParagraph = true
					paragraph.Reset()
				}
			case "tc":
				if tableDepth > 0 {
					inCell = true
					cell.Reset()
				}
			case "t":
				inText = true
			}
		case xml.CharData:
			if !inText {
				continue
			}
			if tableDepth > 0 {
				if inCell {
					cell.Write(t)
				}
			} else if inParagraph {
				paragraph.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if tableDepth == 0 && inParagraph {
					paragraphs = append(paragraphs, paragraph.String())
					inParagraph = false
				}
			case "tc":
				if tableDepth > 0 && inCell {
					cells = append(cells, cell.String())
					inCell = false
				}
			case "tbl":
				tableDepth--
			}
		}
	}

	var out strings.Builder
	for _, p := range paragraphs {
		out.WriteString(p)
		out.WriteString("\n")
	}
	for _, c := range cells {
		out.WriteString(c)
		out.WriteString(" ")
	}

	return strings.TrimSpace(out.String()), nil
}
