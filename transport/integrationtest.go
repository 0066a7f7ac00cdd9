package transport

import (
	"context"
	"fmt"
	"go/parser"
	"go/token"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mathieupost/chainbind"
	"github.com/mathieupost/chainbind/abi"
)

const tokenDocument = `[
	{"type": "function", "name": "totalSupply", "constant": true, "inputs": [], "outputs": [{"name": "", "type": "uint256"}]},
	{"type": "function", "name": "transfer", "inputs": [{"name": "to", "type": "address"}, {"name": "value", "type": "uint256"}], "outputs": []},
	{"type": "function", "name": "transfer", "inputs": [{"name": "to", "type": "address"}], "outputs": []},
	{"type": "event", "name": "Transfer", "inputs": []}
]`

// IntegrationTest runs concurrent compile requests through client. The
// handler behind client must be a chainbind.Executor.
func IntegrationTest(t *testing.T, ctx context.Context, client *chainbind.Client) {
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()

			name := fmt.Sprintf("Token%d", i)
			res, err := client.Compile(ctx, &chainbind.Request{
				Name:                name,
				Document:            []byte(tokenDocument),
				PackageName:         "tokens",
				ImportPath:          "example.com/app/tokens",
				RelativeRuntimePath: "contract",
			})
			require.NoError(t, err)
			require.Len(t, res.Diagnostics, 1)
			require.Contains(t, res.Diagnostics[0], "transfer")

			file, err := parser.ParseFile(token.NewFileSet(), name+".go", res.Source, parser.ImportsOnly)
			require.NoError(t, err)
			require.Equal(t, "tokens", file.Name.Name)
		}()
	}
	wg.Wait()

	_, err := client.Compile(ctx, &chainbind.Request{
		Name:                "Broken",
		Document:            []byte(`{"contracts": []}`),
		PackageName:         "tokens",
		ImportPath:          "example.com/app/tokens",
		RelativeRuntimePath: "contract",
	})
	require.ErrorContains(t, err, abi.ErrMalformedInput.Error())
}
