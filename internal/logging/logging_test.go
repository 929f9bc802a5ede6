package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("warn", &buf)
	require.NoError(t, err)
	require.Equal(t, logrus.WarnLevel, l.GetLevel())

	l.Info("hidden")
	l.WithField("maze_id", "abc").Warn("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
	require.Contains(t, buf.String(), "maze_id=abc")
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := New("chatty", &bytes.Buffer{})
	require.Error(t, err)
}
