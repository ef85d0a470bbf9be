package selfupdate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNewer(t *testing.T) {
	tests := []struct {
		latest  string
		current string
		want    bool
	}{
		{"v1.2.0", "v1.1.0", true},
		{"v1.2.0", "1.1.0", true},
		{"v1.2.0", "v1.2.0", false},
		{"v1.1.0", "v1.2.0", false},
		{"v1.2.0", "(devel)", true},
		{"not-a-version", "v1.0.0", false},
	}

	for _, tt := range tests {
		if got := isNewer(tt.latest, tt.current); got != tt.want {
			t.Errorf("isNewer(%q, %q) = %v, want %v", tt.latest, tt.current, got, tt.want)
		}
	}
}

func TestAssetNameFor(t *testing.T) {
	name, err := assetNameFor("darwin", "arm64")
	assert.NoError(t, err)
	assert.Equal(t, "minaria_Darwin_all.tar.gz", name)

	name, err = assetNameFor("linux", "amd64")
	assert.NoError(t, err)
	assert.Equal(t, "minaria_Linux_x86_64.tar.gz", name)

	name, err = assetNameFor("windows", "386")
	assert.NoError(t, err)
	assert.Equal(t, "minaria_Windows_i386.zip", name)

	_, err = assetNameFor("plan9", "amd64")
	assert.Error(t, err)

	_, err = assetNameFor("linux", "mips")
	assert.Error(t, err)
}

func TestParseChecksums(t *testing.T) {
	data := []byte(`abc123  minaria_Linux_x86_64.tar.gz
def456  minaria_Darwin_all.tar.gz

malformed line with extra fields here
`)
	sums := parseChecksums(data)
	assert.Equal(t, "abc123", sums["minaria_Linux_x86_64.tar.gz"])
	assert.Equal(t, "def456", sums["minaria_Darwin_all.tar.gz"])
	assert.Len(t, sums, 2)
}
