package definition

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	mu      sync.Mutex
	prompts []string
	text    string
	err     error
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompts = append(g.prompts, prompt)
	return g.text, g.err
}

type recordingObserver struct {
	outcomes []Outcome
	err      error
}

func (r *recordingObserver) Observe(_ context.Context, o Outcome) error {
	r.outcomes = append(r.outcomes, o)
	return r.err
}

func TestService_DefineRelaysTextUnchanged(t *testing.T) {
	raw := `{"word":"chair","phonetic":"/tʃɛər/","partOfSpeech":"noun","definition":"a seat for one person","exampleSentence":"She sat on the chair.","status":1}`
	gen := &stubGenerator{text: raw}
	svc := NewService(gen)

	got, err := svc.Define(context.Background(), "chair", Auto())
	require.NoError(t, err)
	assert.Equal(t, raw, got)
	require.Len(t, gen.prompts, 1)
	assert.Equal(t, BuildPrompt("chair", Auto()), gen.prompts[0])
}

func TestService_DefineReturnsGeneratorError(t *testing.T) {
	gen := &stubGenerator{text: "partial", err: errors.New("quota exceeded")}
	svc := NewService(gen)

	got, err := svc.Define(context.Background(), "chair", Fixed("en"))
	require.EqualError(t, err, "quota exceeded")
	assert.Empty(t, got)
	assert.Len(t, gen.prompts, 1)
}

func TestService_NotifiesObservers(t *testing.T) {
	gen := &stubGenerator{text: "{}"}
	obs := &recordingObserver{}
	svc := NewService(gen, obs)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	ticks := []time.Time{base, base.Add(250 * time.Millisecond)}
	svc.now = func() time.Time {
		next := ticks[0]
		ticks = ticks[1:]
		return next
	}

	_, err := svc.Define(context.Background(), "tafel", Fixed("nl"))
	require.NoError(t, err)

	require.Len(t, obs.outcomes, 1)
	o := obs.outcomes[0]
	assert.Equal(t, "tafel", o.Word)
	assert.Equal(t, Fixed("nl"), o.Policy)
	assert.True(t, o.Succeeded())
	assert.Equal(t, 250*time.Millisecond, o.Duration)
	assert.Equal(t, base, o.At)
}

func TestService_ObserverFailureIsNotSurfaced(t *testing.T) {
	gen := &stubGenerator{text: "{}"}
	failing := &recordingObserver{err: errors.New("db down")}
	second := &recordingObserver{}
	svc := NewService(gen, failing, second)

	got, err := svc.Define(context.Background(), "chair", Auto())
	require.NoError(t, err)
	assert.Equal(t, "{}", got)
	assert.Len(t, second.outcomes, 1)
}

func TestService_FailedOutcome(t *testing.T) {
	gen := &stubGenerator{err: errors.New("network unreachable")}
	obs := &recordingObserver{}
	svc := NewService(gen, obs)

	_, _ = svc.Define(context.Background(), "chair", Auto())
	require.Len(t, obs.outcomes, 1)
	assert.False(t, obs.outcomes[0].Succeeded())
	assert.EqualError(t, obs.outcomes[0].Err, "network unreachable")
}

func TestService_LogKeepsWordOnOneLine(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	svc := NewService(&stubGenerator{text: "{}"})
	_, err := svc.Define(context.Background(), "chair\n2024/01/01 00:00:00 [Admin] forged", Fixed("nl\nx"))
	require.NoError(t, err)

	out := strings.TrimRight(buf.String(), "\n")
	assert.Equal(t, 1, strings.Count(out, "\n")+1, "log output should be one line: %q", out)
	assert.Contains(t, out, `"chair\n2024/01/01`)
}
