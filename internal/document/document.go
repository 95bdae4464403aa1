// Package document prepares formatted text for the external page renderer.
// The renderer consumes a flat list of blocks: non-blank lines become styled
// monospace paragraphs, blank lines become vertical spacing. Lines longer
// than the column limit are chunked here, not by the renderer.
package document

import "strings"

type BlockKind int

const (
	Paragraph BlockKind = iota
	Spacer
)

type Block struct {
	Kind BlockKind
	Text string
}

// DefaultColumnLimit matches the monospace page width of the downstream
// renderer at its default font size.
const DefaultColumnLimit = 95

// Build splits formatted text on newlines into paragraph blocks and spacers.
func Build(text string, columnLimit int) []Block {
	if columnLimit <= 0 {
		columnLimit = DefaultColumnLimit
	}
	var blocks []Block
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			blocks = append(blocks, Block{Kind: Spacer})
			continue
		}
		for _, chunk := range chunkLine(line, columnLimit) {
			blocks = append(blocks, Block{Kind: Paragraph, Text: chunk})
		}
	}
	return blocks
}

// chunkLine splits on rune boundaries so multibyte content stays intact.
func chunkLine(line string, limit int) []string {
	runes := []rune(line)
	if len(runes) <= limit {
		return []string{line}
	}
	var chunks []string
	for len(runes) > limit {
		chunks = append(chunks, string(runes[:limit]))
		runes = runes[limit:]
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}
	return chunks
}
