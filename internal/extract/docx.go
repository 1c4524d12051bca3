package extract

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// FromDOCX returns the document's paragraph text in document order, each
// paragraph followed by a newline.
func FromDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read DOCX: %w", err)
	}
	defer doc.Close()

	return paragraphsFromDocumentXML(doc.Editable().GetContent()), nil
}

// paragraphsFromDocumentXML walks word/document.xml and collects the text
// runs (w:t) of each paragraph (w:p).
func paragraphsFromDocumentXML(content string) string {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var (
		sb        strings.Builder
		inText    bool
		paragraph strings.Builder
	)

	for {
		tok, tokErr := decoder.Token()
		if tokErr != nil {
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString(paragraph.String())
				sb.WriteString("\n")
				paragraph.Reset()
			}
		case xml.CharData:
			if inText {
				paragraph.Write(t)
			}
		}
	}

	return sb.String()
}
