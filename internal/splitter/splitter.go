// Package splitter divides long documents into bounded, overlapping chunks
// for independent embedding and retrieval.
package splitter

import "strings"

var defaultSeparators = []string{"\n\n", "\n", " ", ""}

// Splitter cuts text into chunks of at most chunkSize bytes, with up to
// overlap bytes shared between consecutive chunks. Split points are chosen
// at the first separator in priority order (paragraph break, line break,
// space, any character) that actually occurs in the text.
type Splitter struct {
	chunkSize  int
	overlap    int
	separators []string
}

func New(chunkSize, overlap int) *Splitter {
	if chunkSize <= 0 {
		chunkSize = 512
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= chunkSize {
		overlap = chunkSize / 2
	}
	return &Splitter{
		chunkSize:  chunkSize,
		overlap:    overlap,
		separators: defaultSeparators,
	}
}

// Split is deterministic: the same input always yields the same chunks.
func (s *Splitter) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return s.splitText(text, s.separators)
}

func (s *Splitter) splitText(text string, separators []string) []string {
	separator := separators[len(separators)-1]
	var next []string
	for i, sep := range separators {
		if sep == "" || strings.Contains(text, sep) {
			separator = sep
			next = separators[i+1:]
			break
		}
	}

	splits := splitOn(text, separator)

	var chunks []string
	var pending []string
	for _, piece := range splits {
		if len(piece) < s.chunkSize {
			pending = append(pending, piece)
			continue
		}
		// Flush accumulated small pieces, then descend into the oversized
		// one with the lower-priority separators.
		if len(pending) > 0 {
			chunks = append(chunks, s.merge(pending, separator)...)
			pending = nil
		}
		if len(next) == 0 {
			chunks = append(chunks, piece)
		} else {
			chunks = append(chunks, s.splitText(piece, next)...)
		}
	}
	if len(pending) > 0 {
		chunks = append(chunks, s.merge(pending, separator)...)
	}
	return chunks
}

// merge packs pieces back into chunks close to chunkSize, carrying the last
// pieces of each chunk into the next one until the carried length drops to
// the overlap budget.
func (s *Splitter) merge(pieces []string, separator string) []string {
	sepLen := len(separator)
	var chunks []string
	var current []string
	total := 0

	for _, piece := range pieces {
		extra := 0
		if len(current) > 0 {
			extra = sepLen
		}
		if total+len(piece)+extra > s.chunkSize && len(current) > 0 {
			if chunk := joinTrim(current, separator); chunk != "" {
				chunks = append(chunks, chunk)
			}
			for total > s.overlap || (total+len(piece)+sepIf(len(current) > 0, sepLen) > s.chunkSize && total > 0) {
				total -= len(current[0]) + sepIf(len(current) > 1, sepLen)
				current = current[1:]
			}
		}
		current = append(current, piece)
		total += len(piece) + sepIf(len(current) > 1, sepLen)
	}
	if chunk := joinTrim(current, separator); chunk != "" {
		chunks = append(chunks, chunk)
	}
	return chunks
}

func splitOn(text, sep string) []string {
	var parts []string
	if sep == "" {
		for _, r := range text {
			parts = append(parts, string(r))
		}
	} else {
		parts = strings.Split(text, sep)
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func joinTrim(parts []string, sep string) string {
	return strings.TrimSpace(strings.Join(parts, sep))
}

func sepIf(cond bool, n int) int {
	if cond {
		return n
	}
	return 0
}
