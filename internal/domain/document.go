package domain

import "strings"

// Destination names the output document a section is routed to.
type Destination string

const (
	DestinationPending Destination = "pending"
	DestinationArchive Destination = "archive"
)

// SplitOptions configures SplitDocument.
type SplitOptions struct {
	PendingPreamble []string // Lines written at the top of the pending document
	ArchivePreamble []string // Lines written at the top of the archive document
}

// SectionRoute records where one section went.
// Fields are ordered to minimize memory padding.
type SectionRoute struct {
	Header      string
	Destination Destination
	Blocks      int
}

// OutputDocument is one of the two documents produced by a split.
type OutputDocument struct {
	Lines    []string
	Sections int
}

// Text joins the document lines with newlines.
func (d OutputDocument) Text() string {
	return strings.Join(d.Lines, "\n")
}

// LineCount returns the number of lines in the document.
func (d OutputDocument) LineCount() int {
	return len(d.Lines)
}

// SplitResult holds both output documents and the routing of every section.
type SplitResult struct {
	Routes  []SectionRoute
	Pending OutputDocument
	Archive OutputDocument
}

// lineEndings maps CRLF and lone CR line endings to LF.
var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// SplitLines splits text into lines, keeping blank lines.
// CRLF and CR endings are treated as "\n", so outputs always use LF.
// A trailing newline produces a final empty line.
func SplitLines(text string) []string {
	return strings.Split(lineEndings.Replace(text), "\n")
}

// SplitDocument partitions source into a pending document and an archive document.
//
// Each "## " section goes to exactly one output: to the pending document with
// its pending blocks and text lines when it has at least one pending task,
// otherwise to the archive document with its completed blocks and text lines.
// "# " title lines are dropped, as is anything before the first section.
// Runs of blank lines are collapsed in both outputs.
func SplitDocument(source string, opts SplitOptions) SplitResult {
	a := newAssembler(opts)
	for _, line := range SplitLines(source) {
		a.feed(line)
	}
	return a.finish()
}

type assemblerState int

const (
	stateBeforeFirstSection assemblerState = iota
	stateInSection
)

// assembler accumulates sections and routes them as each one closes.
type assembler struct {
	current Section
	pending []string
	archive []string
	routes  []SectionRoute
	state   assemblerState
	nPend   int
	nArch   int
}

func newAssembler(opts SplitOptions) *assembler {
	return &assembler{
		pending: append([]string(nil), opts.PendingPreamble...),
		archive: append([]string(nil), opts.ArchivePreamble...),
		state:   stateBeforeFirstSection,
	}
}

func (a *assembler) feed(line string) {
	switch {
	case IsSectionHeader(line):
		a.flush()
		a.current = Section{Header: line}
		a.state = stateInSection
	case IsTitle(line):
		// Replaced by the preamble title.
	case a.state == stateInSection:
		a.current.Body = append(a.current.Body, line)
	}
}

// flush routes the current section, if any, to one of the buffers.
func (a *assembler) flush() {
	if a.state != stateInSection {
		return
	}

	res := a.current.Partition()
	route := SectionRoute{Header: a.current.Header, Blocks: res.Blocks}
	if res.HasPending {
		a.pending = append(a.pending, a.current.Header)
		a.pending = append(a.pending, res.Pending...)
		a.nPend++
		route.Destination = DestinationPending
	} else {
		a.archive = append(a.archive, a.current.Header)
		a.archive = append(a.archive, res.Archived...)
		a.nArch++
		route.Destination = DestinationArchive
	}
	a.routes = append(a.routes, route)
	a.current = Section{}
}

func (a *assembler) finish() SplitResult {
	a.flush()
	return SplitResult{
		Routes: a.routes,
		Pending: OutputDocument{
			Lines:    CollapseBlankLines(a.pending),
			Sections: a.nPend,
		},
		Archive: OutputDocument{
			Lines:    CollapseBlankLines(a.archive),
			Sections: a.nArch,
		},
	}
}

// CollapseBlankLines replaces every run of blank lines with its first line.
func CollapseBlankLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	prevBlank := false
	for _, line := range lines {
		blank := IsBlank(line)
		if blank && prevBlank {
			continue
		}
		out = append(out, line)
		prevBlank = blank
	}
	return out
}
