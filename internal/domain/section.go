package domain

import "strings"

// Heading prefixes that drive document splitting.
const (
	SectionPrefix = "## "
	TitlePrefix   = "# "
)

// IsSectionHeader reports whether line opens a new section.
func IsSectionHeader(line string) bool {
	return strings.HasPrefix(line, SectionPrefix)
}

// IsTitle reports whether line is a top-level document title.
func IsTitle(line string) bool {
	return strings.HasPrefix(line, TitlePrefix)
}

// Section is a "## " header together with the lines that follow it.
type Section struct {
	Header string
	Body   []string
}

// SectionResult holds both candidate bodies of a partitioned section.
// Text lines appear in both Pending and Archived; task blocks appear in one.
// Fields are ordered to minimize memory padding.
type SectionResult struct {
	Pending    []string
	Archived   []string
	Blocks     int
	HasPending bool
}

// PartitionSection scans body once, routing each task block to the pending
// or archived list by its completion state and copying every other line
// into both lists.
func PartitionSection(_ string, body []string) SectionResult {
	res := SectionResult{
		Pending:  make([]string, 0, len(body)),
		Archived: make([]string, 0, len(body)),
	}

	i := 0
	for i < len(body) {
		line := body[i]
		isTask, _ := ClassifyLine(line)
		if !isTask {
			res.Pending = append(res.Pending, line)
			res.Archived = append(res.Archived, line)
			i++
			continue
		}

		block, next := CollectBlock(body, i)
		res.Blocks++
		if block.Completed {
			res.Archived = append(res.Archived, block.Lines...)
		} else {
			res.HasPending = true
			res.Pending = append(res.Pending, block.Lines...)
		}
		i = next
	}

	return res
}

// Partition runs PartitionSection on s.
func (s Section) Partition() SectionResult {
	return PartitionSection(s.Header, s.Body)
}
