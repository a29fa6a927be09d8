package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestStartSpinner(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreAnyFunction("os/signal.loop"))

	var out bytes.Buffer
	stop := startSpinner(&out, syncLabel, time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	stop()
	stop()

	assert.Contains(t, out.String(), "Sincronizando Rede...")
	assert.Contains(t, out.String(), spinnerFrames[0])
}
