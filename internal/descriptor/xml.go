package descriptor

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
)

type materialXML struct {
	XMLName   xml.Name     `xml:"material"`
	Version   int          `xml:"version,attr"`
	Technique techniqueXML `xml:"technique"`
}

type techniqueXML struct {
	Quality string  `xml:"quality,attr"`
	Pass    passXML `xml:"pass"`
}

type passXML struct {
	Program programXML `xml:"program"`
}

type programXML struct {
	Name string `xml:"name,attr"`
}

type textureXML struct {
	XMLName xml.Name   `xml:"texture"`
	Attrs   []xml.Attr `xml:",any,attr"`
}

// Marshal serializes d as an XML document: declaration, one root element
// named after the kind, two-space indentation and a trailing newline.
func Marshal(d Descriptor) ([]byte, error) {
	var doc any

	switch d.Kind {
	case KindMaterial:
		program, _ := d.Attr("program")
		doc = materialXML{
			Version: d.SchemaVersion,
			Technique: techniqueXML{
				Quality: techniqueQuality,
				Pass:    passXML{Program: programXML{Name: program}},
			},
		}
	case KindTexture:
		attrs := make([]xml.Attr, 0, len(d.Attributes))
		for _, a := range d.Attributes {
			value := a.Value
			if a.Key == "version" {
				value = strconv.Itoa(d.SchemaVersion)
			}
			attrs = append(attrs, xml.Attr{Name: xml.Name{Local: a.Key}, Value: value})
		}
		doc = textureXML{Attrs: attrs}
	default:
		return nil, fmt.Errorf("unknown descriptor kind %q", d.Kind)
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding %s %s: %w", d.Kind, d.Name, err)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.Write(body)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
