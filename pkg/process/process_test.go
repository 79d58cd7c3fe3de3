package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zeebo/errs"

	"tracd.io/tracd/pkg/config"
	"tracd.io/tracd/pkg/rpcstatus"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitStartup, ExitCode(Exit(ExitStartup, errs.New("listen failed"))))
	assert.Equal(t, ExitConfig, ExitCode(config.Error.New("bad config")))
	assert.Equal(t, ExitData, ExitCode(rpcstatus.Error(rpcstatus.DataLoss, "corrupt content")))
	assert.Equal(t, ExitRuntime, ExitCode(errs.New("anything else")))
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger("debug", true)
	assert.NoError(t, err)
	assert.NotNil(t, log)

	_, err = NewLogger("not-a-level", false)
	assert.Error(t, err)
	assert.Equal(t, ExitStartup, ExitCode(err))
}
