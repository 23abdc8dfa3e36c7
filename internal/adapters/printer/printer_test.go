package printer_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/evry/internal/adapters/printer"
)

func TestPrinter_StderrMode(t *testing.T) {
	var out, errOut bytes.Buffer
	p := printer.NewWithWriters(printer.ModeStderr, &out, &errOut)

	p.Emit("tag_name", "scrapesite")
	p.Emit("log", "parsed '2 weeks' into 1209600000ms")
	p.EmitJSON("duration", "1209600000")
	require.NoError(t, p.Flush())

	assert.Equal(t, "tag_name:scrapesite\nlog:parsed '2 weeks' into 1209600000ms\n", errOut.String())
	assert.Empty(t, out.String(), "stderr mode writes nothing to stdout")
}

func TestPrinter_JSONMode(t *testing.T) {
	var out, errOut bytes.Buffer
	p := printer.NewWithWriters(printer.ModeJSON, &out, &errOut)

	p.Emit("tag_name", "scrapesite")
	p.Emit("data_directory", "/home/user/.local/share/evry/data")
	p.EmitJSON("duration", "1209600000")
	p.EmitJSON("duration_pretty", "14 days")
	require.NoError(t, p.Flush())

	assert.Empty(t, errOut.String(), "JSON mode buffers everything")

	g := goldie.New(t)
	g.Assert(t, "messages", out.Bytes())
}

func TestPrinter_JSONModeEmptyFlush(t *testing.T) {
	var out, errOut bytes.Buffer
	p := printer.NewWithWriters(printer.ModeJSON, &out, &errOut)

	require.NoError(t, p.Flush())
	assert.Equal(t, "[]\n", out.String())
}

func TestSilent(t *testing.T) {
	var s printer.Silent
	s.Emit("log", "discarded")
	s.EmitJSON("log", "discarded")
	assert.NoError(t, s.Flush())
}

func TestSelect(t *testing.T) {
	assert.IsType(t, printer.Silent{}, printer.Select(false, false))
	assert.IsType(t, &printer.Printer{}, printer.Select(true, false))
	assert.IsType(t, &printer.Printer{}, printer.Select(true, true))
	assert.IsType(t, &printer.Printer{}, printer.Select(false, true))
}
