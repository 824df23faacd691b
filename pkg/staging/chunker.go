package staging

import "strings"

// pageMarker is the prefix the file extractor puts on every PDF page.
const pageMarker = "[Page "

// SplitContent splits content into chunks of at most maxChars. PDF-style
// content splits on page markers so no page is cut mid-text; everything else
// splits on character count with a preference for sentence boundaries.
func SplitContent(content string, maxChars int) []string {
	if len(content) <= maxChars {
		if content == "" {
			return nil
		}
		return []string{content}
	}
	if strings.Contains(content, pageMarker) {
		return splitByPages(content, maxChars)
	}
	return splitBySentences(content, maxChars)
}

// splitByPages accumulates whole pages until the next page would overflow the
// budget. A single page larger than the budget falls back to sentence splits.
func splitByPages(content string, maxChars int) []string {
	pages := splitKeepingMarkers(content)

	var chunks []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}

	for _, page := range pages {
		if len(page) > maxChars {
			flush()
			chunks = append(chunks, splitBySentences(page, maxChars)...)
			continue
		}
		if current.Len() > 0 && current.Len()+len(page)+2 > maxChars {
			flush()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(page)
	}
	flush()
	return chunks
}

// splitKeepingMarkers cuts content at every page marker, keeping the marker
// with its page.
func splitKeepingMarkers(content string) []string {
	var pages []string
	rest := content
	for {
		idx := strings.Index(rest[1:], "\n"+pageMarker)
		if idx < 0 {
			if trimmed := strings.TrimSpace(rest); trimmed != "" {
				pages = append(pages, trimmed)
			}
			return pages
		}
		cut := idx + 1
		if trimmed := strings.TrimSpace(rest[:cut]); trimmed != "" {
			pages = append(pages, trimmed)
		}
		rest = rest[cut+1:]
	}
}

// splitBySentences splits on character count, backing up to the nearest
// sentence end when one is reasonably close to the cut point.
func splitBySentences(content string, maxChars int) []string {
	var chunks []string
	for len(content) > maxChars {
		cut := maxChars
		if idx := lastSentenceEnd(content[:maxChars]); idx > maxChars/2 {
			cut = idx + 1
		}
		chunks = append(chunks, strings.TrimSpace(content[:cut]))
		content = strings.TrimSpace(content[cut:])
	}
	if content != "" {
		chunks = append(chunks, content)
	}
	return chunks
}

func lastSentenceEnd(s string) int {
	best := -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.', '!', '?':
			if i+1 == len(s) || s[i+1] == ' ' || s[i+1] == '\n' {
				best = i
			}
		}
	}
	return best
}
