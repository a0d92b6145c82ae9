package capture_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/charmingruby/loopcapture/capture"
)

var errClosed = errors.New("closed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errClosed }

func TestVariantsOrder(t *testing.T) {
	var names []string
	for _, v := range capture.Variants() {
		names = append(names, v.Name)
		require.NotEmpty(t, v.Description)
		require.NotNil(t, v.Build)
	}
	require.Equal(t, []string{"shared", "rebind", "range"}, names)
}

func TestVariantsReturnsCopy(t *testing.T) {
	vs := capture.Variants()
	vs[0].Name = "changed"
	require.Equal(t, "shared", capture.Variants()[0].Name)
}

func TestLookup(t *testing.T) {
	v, ok := capture.Lookup("rebind")
	require.True(t, ok)
	require.Equal(t, "rebind", v.Name)

	_, ok = capture.Lookup("missing")
	require.False(t, ok)
}

func TestRunWritesOneLinePerClosure(t *testing.T) {
	cases := map[string]string{
		"shared": "1\n1\n",
		"rebind": "0\n1\n",
		"range":  "0\n1\n",
	}
	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			v, ok := capture.Lookup(name)
			require.True(t, ok)
			var buf bytes.Buffer
			require.NoError(t, capture.Run(&buf, v, capture.DefaultValues()))
			require.Equal(t, want, buf.String())
		})
	}
}

func TestRunEmptyWritesNothing(t *testing.T) {
	v, _ := capture.Lookup("shared")
	var buf bytes.Buffer
	require.NoError(t, capture.Run(&buf, v, nil))
	require.Empty(t, buf.String())
}

func TestRunReportsWriteError(t *testing.T) {
	v, _ := capture.Lookup("shared")
	err := capture.Run(failingWriter{}, v, capture.DefaultValues())
	require.ErrorIs(t, err, errClosed)
	require.ErrorContains(t, err, "shared")
}
