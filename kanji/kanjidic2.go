package kanji

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// kanjidic2Character mirrors the parts of a kanjidic2 <character> element the
// aligner needs.
type kanjidic2Character struct {
	Literal        string `xml:"literal"`
	ReadingMeaning struct {
		RMGroup []struct {
			Reading []struct {
				Value string `xml:",chardata"`
				Type  string `xml:"r_type,attr"`
			} `xml:"reading"`
		} `xml:"rmgroup"`
		Nanori []string `xml:"nanori"`
	} `xml:"reading_meaning"`
}

// LoadKanjidic2 parses a kanjidic2 document and returns one profile per
// character that has at least one Japanese reading. On'yomi and kun'yomi
// become general readings; nanori become name readings.
func LoadKanjidic2(r io.Reader) ([]Kanji, error) {
	var out []Kanji
	// Use xml.Decoder to find <character> elements directly, skipping any wrapper
	d := xml.NewDecoder(r)
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse kanjidic2: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "character" {
			continue
		}
		var c kanjidic2Character
		if err := d.DecodeElement(&c, &se); err != nil {
			return nil, fmt.Errorf("decode kanjidic2 character: %w", err)
		}
		if utf8.RuneCountInString(c.Literal) != 1 {
			continue
		}
		var readings []string
		for _, group := range c.ReadingMeaning.RMGroup {
			for _, rd := range group.Reading {
				if rd.Type == "ja_on" || rd.Type == "ja_kun" {
					readings = append(readings, rd.Value)
				}
			}
		}
		if len(readings) == 0 && len(c.ReadingMeaning.Nanori) == 0 {
			continue
		}
		ch, _ := utf8.DecodeRuneInString(c.Literal)
		out = append(out, Kanji{
			Character: ch,
			Readings:  readings,
			Nanori:    c.ReadingMeaning.Nanori,
		})
	}
	return out, nil
}

// LoadKanjidic2File opens path and parses it with LoadKanjidic2.
func LoadKanjidic2File(path string) ([]Kanji, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open kanjidic2: %w", err)
	}
	defer f.Close()
	return LoadKanjidic2(f)
}
