package keyspace

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keridb/kelsdb/internal/testutil"
)

// TestScenarios drives the keyspace layer's two multi-value access modes
// from the table-driven YAML fixtures under testdata/scenarios, the way the
// teacher's harness drives CUE scenarios end to end.
func TestScenarios(t *testing.T) {
	names := []string{"kels_insertion_order", "sigs_duplicate_set"}
	for _, name := range names {
		name := name
		t.Run(name, func(t *testing.T) {
			s, err := testutil.LoadScenario(filepath.Join("..", "testdata", "scenarios", name+".yaml"))
			require.NoError(t, err)

			_, sub := openTestSubStore(t, s.SubStore, s.DupSort)
			key := []byte("k1")

			switch s.Mode {
			case "insertion":
				for _, v := range s.Puts {
					_, err := sub.AddIoVal(key, []byte(v))
					require.NoError(t, err)
				}
				got, err := sub.GetIoVals(key)
				require.NoError(t, err)
				assert.Equal(t, toBytes(s.ExpectOrder), got)

				n, err := sub.CntVals(key)
				require.NoError(t, err)
				assert.Equal(t, s.ExpectCount, n)

			case "lexical":
				_, err := sub.PutVals(key, toBytes(s.Puts))
				require.NoError(t, err)

				got, err := sub.GetVals(key)
				require.NoError(t, err)
				assert.Equal(t, toBytes(s.ExpectOrder), got)

				n, err := sub.CntVals(key)
				require.NoError(t, err)
				assert.Equal(t, s.ExpectCount, n)
			}
		})
	}
}

func toBytes(ss []string) [][]byte {
	out := make([][]byte, len(ss))
	for i, s := range ss {
		out[i] = []byte(s)
	}
	return out
}
