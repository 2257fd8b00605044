// stack_test.go — raise-site stack capture.
package failure

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stackGrab(skipExtra int) Stack {
	return captureStackDefault(skipExtra + 1)
}

func stackTestLevel2(skipExtra int) Stack {
	return stackGrab(skipExtra)
}

func stackTestLevel1(skipExtra int) Stack {
	return stackTestLevel2(skipExtra)
}

func TestCaptureStack_DepthLimits(t *testing.T) {
	t.Parallel()

	s := captureStack(0, 0)
	require.NotEmpty(t, s)
	assert.LessOrEqual(t, len(s), maxStackDepth)

	s = captureStack(0, 3)
	require.NotEmpty(t, s)
	assert.LessOrEqual(t, len(s), 3)
}

func TestCaptureStackDefault_SkipSelectsFirstFrame(t *testing.T) {
	t.Parallel()

	s := stackTestLevel1(0)
	require.NotEmpty(t, s)
	assert.True(t, strings.HasSuffix(s[0].Function, ".stackTestLevel2"), "first frame %q", s[0].Function)

	s = stackTestLevel1(1)
	require.NotEmpty(t, s)
	assert.True(t, strings.HasSuffix(s[0].Function, ".stackTestLevel1"), "first frame %q", s[0].Function)
}

func TestCaptureStack_FramesHaveMetadata(t *testing.T) {
	t.Parallel()

	for i, fr := range stackTestLevel1(0) {
		if fr.Function == "" {
			continue
		}
		assert.NotEmpty(t, fr.File, "frame %d file", i)
		assert.Positive(t, fr.Line, "frame %d line", i)
	}
}

func raiseHere() *Error {
	return Catch(func() { New(tag).Raise() })
}

func TestRaise_StackStartsAtRaiser(t *testing.T) {
	t.Parallel()

	caught := raiseHere()
	require.NotNil(t, caught)
	require.NotEmpty(t, caught.Stack())
	first := caught.Stack()[0].Function
	assert.NotContains(t, first, "newError")
	assert.NotContains(t, first, "Plain.Raise")
	assert.Contains(t, first, "raiseHere")
}
