//go:build e2e && unix

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startSearchApp(t *testing.T, args ...string) *TUITestFramework {
	t.Helper()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	require.NoError(t, tf.StartApp(append([]string{"--no-background"}, args...)...), "Failed to start app")
	require.True(t, tf.Ready(), "Should render the empty state")
	return tf
}

func TestSearchShowsCard(t *testing.T) {
	t.Parallel()
	tf := startSearchApp(t)

	require.NoError(t, tf.Type("Pikachu"))
	require.NoError(t, tf.Enter())

	require.NoError(t, tf.WaitForE(func(s string) bool {
		plain := ansiRe.ReplaceAllString(s, "")
		return strings.Contains(plain, "#25") && strings.Contains(plain, "Electric")
	}, 5*time.Second, "card for pikachu was not rendered"))

	plain := tf.SnapshotPlain()
	assert.Contains(t, plain, "Static")
	assert.Contains(t, plain, "Lightning Rod (hidden)")
	assert.Contains(t, tf.api.Hits(), "pikachu")
}

func TestSearchByIDFromButton(t *testing.T) {
	t.Parallel()
	tf := startSearchApp(t)

	require.NoError(t, tf.Type("1"))
	require.NoError(t, tf.Tab())
	require.NoError(t, tf.SendKeys(KeySpace))

	require.True(t, tf.OutputContainsPlain("Bulbasaur", 5*time.Second), "Button should trigger the lookup")
	assert.True(t, tf.SeePlain("Poison"))
}

func TestSearchNotFound(t *testing.T) {
	t.Parallel()
	tf := startSearchApp(t)

	require.NoError(t, tf.Type("missingno"))
	require.NoError(t, tf.Enter())

	require.True(t, tf.OutputContainsPlain("Pokemon not found!", 5*time.Second), "Should show the not found banner")
}

func TestSearchShowsLoadingState(t *testing.T) {
	t.Parallel()
	tf := startSearchApp(t)

	require.NoError(t, tf.Type("slowpoke"))
	require.NoError(t, tf.Enter())

	require.True(t, tf.OutputContainsPlain("Searching for slowpoke", 3*time.Second), "Should show the loading line")
	require.True(t, tf.OutputContainsPlain("#25", 5*time.Second), "Should show the record once the lookup resolves")
}

func TestBlankQueryDoesNothing(t *testing.T) {
	t.Parallel()
	tf := startSearchApp(t)

	require.NoError(t, tf.Type("   "))
	require.NoError(t, tf.Enter())

	time.Sleep(300 * time.Millisecond)
	assert.Empty(t, tf.api.Hits(), "Blank query must not reach the API")
	assert.NotContains(t, tf.SnapshotPlain(), "Searching")
}

func TestSearchIsLogged(t *testing.T) {
	t.Parallel()
	tf := startSearchApp(t)

	require.NoError(t, tf.Type("pikachu"))
	require.NoError(t, tf.Enter())
	require.True(t, tf.OutputContainsPlain("#25", 5*time.Second))

	require.NoError(t, tf.SendCtrlC())
	exited, _ := tf.WaitExit(2 * time.Second)
	require.True(t, exited)

	log := tf.ReadLog()
	assert.Contains(t, log, `"message":"search succeeded"`)
	assert.Contains(t, log, `"name":"pikachu"`)
}
