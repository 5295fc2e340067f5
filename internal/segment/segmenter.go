package segment

import (
	"regexp"
	"strings"

	"github.com/ruslamp94/legal-traffic-light/pkg/models"
)

// PreambleHeading labels everything before the first recognized heading.
const PreambleHeading = "PREAMBLE"

// Segmenter splits raw contract text into heading-labeled sections.
// It cannot fail: a document with no recognizable headings becomes a
// single preamble section.
type Segmenter struct {
	patterns []*regexp.Regexp
}

// NewSegmenter creates a segmenter for the numbered-heading forms used
// in contracts: "N. TITLE", "РАЗДЕЛ N"/"SECTION N", "Статья N"/"Article N".
func NewSegmenter() *Segmenter {
	return &Segmenter{
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^(\d+)\.\s*([А-ЯЁA-Z][А-ЯЁA-Z\s\-]+)$`),
			regexp.MustCompile(`(?i)^(РАЗДЕЛ\s+\d+|SECTION\s+\d+)[.\s]+(.+)$`),
			regexp.MustCompile(`(?i)^(СТАТЬЯ\s+\d+|ARTICLE\s+\d+)[.\s]+(.+)$`),
		},
	}
}

// Segment splits text into sections in document order. A heading line
// opens a new section; the lines after it accumulate into its body
// until the next heading or end of text. A repeated heading label does
// not open a new entry: its body is concatenated onto the first
// occurrence, so no text is silently lost.
func (s *Segmenter) Segment(text string) []models.ContractSection {
	var sections []models.ContractSection
	index := map[string]int{}

	appendSection := func(heading string, body []string) {
		content := strings.TrimSpace(strings.Join(body, "\n"))
		if i, ok := index[heading]; ok {
			if content == "" {
				return
			}
			if sections[i].Body != "" {
				sections[i].Body += "\n" + content
			} else {
				sections[i].Body = content
			}
			return
		}
		index[heading] = len(sections)
		sections = append(sections, models.ContractSection{
			Heading:  heading,
			Body:     content,
			Position: len(sections),
		})
	}

	current := PreambleHeading
	var body []string
	sawPreamble := false

	for _, line := range strings.Split(text, "\n") {
		heading, ok := s.matchHeading(strings.TrimSpace(line))
		if !ok {
			body = append(body, line)
			if current == PreambleHeading {
				sawPreamble = true
			}
			continue
		}
		if current != PreambleHeading || sawPreamble {
			appendSection(current, body)
		}
		current = heading
		body = nil
	}
	if current != PreambleHeading || sawPreamble || len(sections) == 0 {
		appendSection(current, body)
	}

	return sections
}

func (s *Segmenter) matchHeading(line string) (string, bool) {
	if line == "" {
		return "", false
	}
	for _, p := range s.patterns {
		if m := p.FindStringSubmatch(line); m != nil {
			return strings.ToUpper(m[1] + ". " + strings.TrimSpace(m[2])), true
		}
	}
	return "", false
}
