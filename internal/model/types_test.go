package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDirection(t *testing.T) {
	assert.Equal(t, DirectionUpload, ParseDirection("upload"))
	assert.Equal(t, DirectionDownload, ParseDirection(" Download "))
	assert.Equal(t, DirectionUnknown, ParseDirection(""))
	assert.Equal(t, DirectionUnknown, ParseDirection("bidirectional"))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Google Dns", DisplayName("ping_google_dns"))
	assert.Equal(t, "Tcp Upload", DisplayName("iperf_tcp_upload"))
	assert.Equal(t, "Local", DisplayName("local"))
}
