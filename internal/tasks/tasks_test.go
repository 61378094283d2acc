package tasks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const boinccmdOutput = `
======== Tasks ========
1) -----------
   name: LHC_job_7731_0
   WU name: LHC_job_7731
   project URL: https://lhcathome.cern.ch/lhcathome/
   received: Mon Jan  8 10:15:22 2024
   report deadline: Mon Jan 15  10:15:22 2024
   ready to report: no
   state: downloaded
   scheduler state: scheduled
   active_task_state: EXECUTING
   app version num: 102
   resources: 1 CPU
   CPU time at last checkpoint: 3541.120000
   current CPU time: 3600.250000
   estimated CPU time remaining: 7210.000000
   fraction done: 0.333000
2) -----------
   name: rosetta_9912_1
   received: Mon Jan  8 11:00:00 2024
   report deadline: Thu Jan 11 11:00:00 2024
   active_task_state: UNINITIALIZED
   estimated CPU time remaining: 28800.000000
`

func TestParse_Boinccmd(t *testing.T) {
	got := Parse(boinccmdOutput)
	require.Len(t, got, 2)

	first := got[0]
	assert.Equal(t, "LHC_job_7731_0", first[FieldName])
	assert.Equal(t, "EXECUTING", first[FieldState])
	assert.Equal(t, "3541.120000", first[FieldCPUCheckpoint])
	assert.Equal(t, "3600.250000", first[FieldCPUCurrent])
	assert.Equal(t, "7210.000000", first[FieldCPURemaining])
	assert.Equal(t, "Mon Jan  8 10:15:22 2024", first[FieldReceived])
	assert.Equal(t, "Mon Jan 15  10:15:22 2024", first[FieldDeadline])
	assert.Len(t, first, 7)

	second := got[1]
	assert.Equal(t, "rosetta_9912_1", second[FieldName])
	assert.Equal(t, "UNINITIALIZED", second[FieldState])
	_, ok := second.Get(FieldCPUCurrent)
	assert.False(t, ok, "fields missing from the block stay absent")
	_, ok = second.Get(FieldCPUCheckpoint)
	assert.False(t, ok)
}

func TestParse_NoSeparator(t *testing.T) {
	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("======== Tasks ========\n"))
	assert.Empty(t, Parse("name: Foo\nactive_task_state: EXECUTING\n"))
}

func TestParse_TwoRecords(t *testing.T) {
	raw := "---preamble---\n-----------\nname: Foo\nactive_task_state: EXECUTING\n-----------\nname: Bar\nactive_task_state: READY\n"

	got := Parse(raw)

	assert.Equal(t, []Task{
		{FieldName: "Foo", FieldState: "EXECUTING"},
		{FieldName: "Bar", FieldState: "READY"},
	}, got)
}

func TestParse_MissingDelimiter(t *testing.T) {
	got := Parse("header\n-----------\nname Foo\nactive_task_state:EXECUTING\nreceived: today\n")
	require.Len(t, got, 1)

	assert.Equal(t, Task{FieldReceived: "today"}, got[0])
}

func TestParse_LabelOnlyLineClearsEarlierValue(t *testing.T) {
	got := Parse("-----------\nname: Foo\nname\n")
	require.Len(t, got, 1)

	_, ok := got[0].Get(FieldName)
	assert.False(t, ok)
}

func TestParse_ValueKeepsLaterDelimiters(t *testing.T) {
	got := Parse("-----------\nname: a: b\n")
	require.Len(t, got, 1)
	assert.Equal(t, "a: b", got[0][FieldName])
}

func TestParse_EmptyBlocks(t *testing.T) {
	// Every separator after the header opens a record, even an empty one.
	got := Parse("-----------\n-----------\nname: X\n")
	require.Len(t, got, 2)
	assert.Empty(t, got[0])
	assert.Equal(t, "X", got[1][FieldName])
}

func TestParse_PreservesOrder(t *testing.T) {
	raw := "h\n-----------\nname: a\n-----------\nname: b\n-----------\nname: c\n"
	var names []string
	for _, task := range Parse(raw) {
		names = append(names, task[FieldName])
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}
