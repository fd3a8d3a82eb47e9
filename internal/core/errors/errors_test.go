package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExitCode_PerKind(t *testing.T) {
	require.Equal(t, ExitOK, ExitCode(nil))
	require.Equal(t, ExitSourceNotFound, ExitCode(New(KindSourceNotFound, "load", "missing")))
	require.Equal(t, ExitMalformedSource, ExitCode(New(KindMalformedSource, "load", "bad row")))
	require.Equal(t, ExitSchemaViolation, ExitCode(New(KindSchemaViolation, "validate", "no column")))
	require.Equal(t, ExitInvalidValue, ExitCode(New(KindInvalidValue, "aggregate", "bad cell")))
	require.Equal(t, ExitInternal, ExitCode(stderrors.New("something else")))
}

func TestKindOf_SurvivesWrapping(t *testing.T) {
	inner := New(KindInvalidValue, "aggregate", "row 3")
	wrapped := fmt.Errorf("pipeline: %w", inner)
	require.Equal(t, KindInvalidValue, KindOf(wrapped))
	require.Equal(t, Kind(""), KindOf(stderrors.New("untagged")))
}

func TestRunError_MessageIncludesStageAndCause(t *testing.T) {
	cause := stderrors.New("open failed")
	err := Wrap(KindSourceNotFound, "load", cause, "source %q does not exist", "data.csv")
	require.Contains(t, err.Error(), "load:")
	require.Contains(t, err.Error(), `"data.csv"`)
	require.Contains(t, err.Error(), "open failed")
	require.ErrorIs(t, err, cause)
}
