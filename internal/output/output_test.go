package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_RecordsPlainAndTagged(t *testing.T) {
	m := NewMemory()

	m.Writeln(Styled(Error, "KO"), Text(" in a.yml (line 2)"))
	m.Writeln(Styled(Success, "OK"))

	assert.Equal(t, []string{"KO in a.yml (line 2)", "OK"}, m.Lines())
	assert.Equal(t, []string{"<error>KO</error> in a.yml (line 2)", "<info>OK</info>"}, m.Tagged())
}

func TestMemory_Empty(t *testing.T) {
	m := NewMemory()

	assert.Empty(t, m.Lines())
	assert.Empty(t, m.Tagged())
}

func TestMemory_LinesIsACopy(t *testing.T) {
	m := NewMemory()
	m.Writeln(Text("x"))

	lines := m.Lines()
	lines[0] = "changed"

	assert.Equal(t, []string{"x"}, m.Lines())
}

func TestConsole_Unstyled(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, false)

	c.Writeln(Styled(Error, ">>"), Text(" 2      b: [1,2"))
	c.Writeln()

	assert.Equal(t, ">> 2      b: [1,2\n\n", buf.String())
}

func TestConsole_StyledKeepsText(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, true)

	c.Writeln(Styled(Success, "OK"), Text(" in a.yml"))

	assert.Contains(t, buf.String(), "OK")
	assert.Contains(t, buf.String(), " in a.yml\n")
}

func TestStyle_String(t *testing.T) {
	assert.Equal(t, "plain", Plain.String())
	assert.Equal(t, "info", Success.String())
	assert.Equal(t, "error", Error.String())
}
