package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadebrew/site-manager/internal/config"
)

func TestCreateLogger(t *testing.T) {
	for _, debug := range []bool{false, true} {
		log, err := CreateLogger(&config.Config{Debug: debug})
		require.NoError(t, err)
		assert.NotNil(t, log)
	}
}
