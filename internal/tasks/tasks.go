// Package tasks parses the task list printed by `boinccmd --get_tasks`.
//
// The output is a header followed by one block per task, each block opened
// by a line of 11 hyphens and made of "label: value" lines:
//
//	======== Tasks ========
//	1) -----------
//	   name: wu_12345_0
//	   active_task_state: EXECUTING
//	   current CPU time: 3600.000000
//
// Parsing never fails. Lines it doesn't recognize are skipped and fields a
// block doesn't mention are simply absent from its Task.
package tasks

import "strings"

// Separator opens each task block.
const Separator = "-----------"

// Field names a known task attribute.
type Field string

const (
	FieldName          Field = "name"
	FieldState         Field = "state"
	FieldCPURemaining  Field = "cpu_remaining"
	FieldCPUCheckpoint Field = "cpu_checkpoint"
	FieldCPUCurrent    Field = "cpu_current"
	FieldReceived      Field = "received"
	FieldDeadline      Field = "deadline"
)

// labels maps line prefixes to fields, tried in order.
var labels = []struct {
	prefix string
	field  Field
}{
	{"name", FieldName},
	{"active_task_state", FieldState},
	{"estimated CPU time remaining", FieldCPURemaining},
	{"CPU time at last checkpoint", FieldCPUCheckpoint},
	{"current CPU time", FieldCPUCurrent},
	{"received", FieldReceived},
	{"report deadline", FieldDeadline},
}

// Task holds the fields found in one block. Only fields present in the
// block have keys.
type Task map[Field]string

// Get returns the field value and whether the block provided it.
func (t Task) Get(f Field) (string, bool) {
	v, ok := t[f]
	return v, ok
}

// Parse splits raw task-list output into one Task per block, in block order.
// Text before the first separator is a header and yields nothing, so input
// without any separator returns an empty slice.
func Parse(raw string) []Task {
	blocks := strings.Split(raw, Separator)
	result := make([]Task, 0, len(blocks)-1)

	for _, block := range blocks[1:] {
		result = append(result, parseBlock(block))
	}
	return result
}

func parseBlock(block string) Task {
	task := make(Task)

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		field, ok := matchLabel(line)
		if !ok {
			continue
		}

		// A label without its ": " delimiter leaves the field unknown,
		// including when an earlier line had set it.
		if _, value, found := strings.Cut(line, ": "); found {
			task[field] = value
		} else {
			delete(task, field)
		}
	}
	return task
}

func matchLabel(line string) (Field, bool) {
	for _, l := range labels {
		if strings.HasPrefix(line, l.prefix) {
			return l.field, true
		}
	}
	return "", false
}
