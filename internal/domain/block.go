package domain

// TaskBlock is a task line followed by its nested detail lines.
// Completed is taken from the first line and never changes.
type TaskBlock struct {
	Lines     []string
	Completed bool
}

// Marker returns the task line that opens the block.
func (b TaskBlock) Marker() string {
	if len(b.Lines) == 0 {
		return ""
	}
	return b.Lines[0]
}

// CollectBlock gathers the task block that starts at lines[start].
// Every following line that is blank or indented deeper than the task line
// belongs to the block. Collection stops at the first non-blank line whose
// indentation is at or above the task line's. Blank lines seen before that
// point, including trailing blanks at the end of lines, stay in the block.
//
// It returns the block and the index of the first line after it.
func CollectBlock(lines []string, start int) (TaskBlock, int) {
	if start < 0 || start >= len(lines) {
		return TaskBlock{}, start
	}

	marker := lines[start]
	_, completed := ClassifyLine(marker)
	depth := Indent(marker)

	end := start + 1
	for end < len(lines) {
		next := lines[end]
		if !IsBlank(next) && Indent(next) <= depth {
			break
		}
		end++
	}

	return TaskBlock{
		Lines:     lines[start:end:end],
		Completed: completed,
	}, end
}
