package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/input-collector/internal/collect"
)

func TestTerminalPrompter_Answers(t *testing.T) {
	tests := []struct {
		input    string
		canAbort bool
		want     collect.Choice
	}{
		{"y\n", true, collect.ChoiceYes},
		{"YES\n", false, collect.ChoiceYes},
		{" n \n", true, collect.ChoiceNo},
		{"a\n", true, collect.ChoiceAbort},
		{"abort\ny\n", false, collect.ChoiceYes},
		{"\nx\nno\n", true, collect.ChoiceNo},
		{"y", true, collect.ChoiceYes}, // no trailing newline
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			p := NewTerminalPrompter(strings.NewReader(tt.input), &out)

			got, err := p.ConfirmReplace(context.Background(), "/a/x", "/b/x", tt.canAbort)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTerminalPrompter_EOF(t *testing.T) {
	var out bytes.Buffer
	p := NewTerminalPrompter(strings.NewReader(""), &out)

	_, err := p.ConfirmFolder(context.Background(), "/data")
	assert.Error(t, err)
	assert.Contains(t, out.String(), "/data")
}

func TestTerminalPrompter_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewTerminalPrompter(strings.NewReader("y\n"), &bytes.Buffer{})
	_, err := p.ConfirmFolder(ctx, "/data")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPolicyPrompter(t *testing.T) {
	yes := collect.ChoiceYes
	p := &policyPrompter{
		folder:  &yes,
		replace: replaceChoice("never"),
		ask:     NewTerminalPrompter(strings.NewReader(""), &bytes.Buffer{}),
	}

	got, err := p.ConfirmFolder(context.Background(), "/d")
	require.NoError(t, err)
	assert.Equal(t, collect.ChoiceYes, got)

	got, err = p.ConfirmReplace(context.Background(), "/a", "/b", true)
	require.NoError(t, err)
	assert.Equal(t, collect.ChoiceNo, got)

	assert.Nil(t, replaceChoice("ask"))
	assert.Equal(t, collect.ChoiceYes, *replaceChoice("always"))
}
