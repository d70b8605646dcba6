package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShow_SetsCurrent(t *testing.T) {
	c := NewCenter(nil)

	c.Show("book created", SeveritySuccess)

	n, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "book created", n.Message)
	assert.Equal(t, SeveritySuccess, n.Severity)
}

func TestShow_ReplacesLive(t *testing.T) {
	c := NewCenter(nil)

	c.Show("first", SeverityInfo)
	c.Show("second", SeverityWarning)

	n, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "second", n.Message)
	assert.Equal(t, SeverityWarning, n.Severity)
}

func TestShowFor_ExpiresAfterDuration(t *testing.T) {
	c := NewCenter(nil)

	c.ShowFor("short lived", SeverityInfo, 30*time.Millisecond)

	_, ok := c.Current()
	require.True(t, ok)

	assert.Eventually(t, func() bool {
		_, ok := c.Current()
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestShowFor_ReplaceBeforeExpiryKeepsSuccessor(t *testing.T) {
	c := NewCenter(nil)

	// The first timer would fire at ~100ms; by then the second
	// notification must still be live.
	c.ShowFor("A", SeverityInfo, 100*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	c.ShowFor("B", SeverityInfo, 5*time.Second)

	time.Sleep(100 * time.Millisecond)

	n, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "B", n.Message)
}

func TestClear_Immediate(t *testing.T) {
	c := NewCenter(nil)

	c.Show("to be dismissed", SeverityError)
	c.Clear()

	_, ok := c.Current()
	assert.False(t, ok)
}

func TestClear_WhenNoneLive(t *testing.T) {
	c := NewCenter(nil)

	assert.NotPanics(t, func() { c.Clear() })
}

func TestClear_StaleTimerDoesNotClearSuccessor(t *testing.T) {
	c := NewCenter(nil)

	c.ShowFor("A", SeverityInfo, 40*time.Millisecond)
	c.Clear()
	c.ShowFor("B", SeverityInfo, 5*time.Second)

	time.Sleep(80 * time.Millisecond)

	n, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "B", n.Message)
}

func TestSink_ReceivesEveryNotification(t *testing.T) {
	var got []Notification
	c := NewCenter(func(n Notification) { got = append(got, n) })

	c.Show("one", SeverityInfo)
	c.Show("two", SeverityError)

	require.Len(t, got, 2)
	assert.Equal(t, "one", got[0].Message)
	assert.Equal(t, SeverityError, got[1].Severity)
}
