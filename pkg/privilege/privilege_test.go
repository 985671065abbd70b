// pkg/privilege/privilege_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: current process identity
// PURPOSE: Verify identity spec resolution and same-identity execution

package privilege_test

import (
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathmend/pathmend/pkg/errors"
	"github.com/pathmend/pathmend/pkg/privilege"
)

func TestResolveNumericSpecs(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		wantUID int
		wantGID int
	}{
		{
			name:    "uid and gid",
			spec:    "1234:5678",
			wantUID: 1234,
			wantGID: 5678,
		},
		{
			name:    "current uid with explicit gid",
			spec:    strconv.Itoa(os.Getuid()) + ":4321",
			wantUID: os.Getuid(),
			wantGID: 4321,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uid, gid, err := privilege.Resolve(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.wantUID, uid)
			assert.Equal(t, tt.wantGID, gid)
		})
	}
}

func TestResolveRejectsBadSpecs(t *testing.T) {
	for _, spec := range []string{"", ":1000", "no-such-user-pathmend"} {
		_, _, err := privilege.Resolve(spec)
		assert.Error(t, err, "spec %q", spec)
	}

	_, _, err := privilege.Resolve("no-such-user-pathmend:0")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrPrivilege))
}

func TestRunAsSameIdentity(t *testing.T) {
	runner := privilege.NewProcessRunner()
	spec := strconv.Itoa(os.Geteuid()) + ":" + strconv.Itoa(os.Getegid())

	ran := false
	err := runner.RunAs(spec, func() error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)

	// The function's error passes through.
	sentinel := errors.New(errors.ErrInternal, "from inside")
	err = runner.RunAs(spec, func() error { return sentinel })
	assert.Equal(t, sentinel, err)
}
