package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
ethereum:
  rpc_url: http://localhost:8545
  chain_id: 31337
  ticket_contract: "0x5FbDB2315678afecb367f032d93F642f64180aa3"
  signer_private_key: "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
pricing:
  display_currency: PEN
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, int64(31337), cfg.Ethereum.ChainID)
	assert.Equal(t, "PEN", cfg.Pricing.DisplayCurrency)

	// Defaults fill what the file leaves out.
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, uint64(300000), cfg.Ethereum.GasLimit)
	assert.Equal(t, 2*time.Minute, cfg.Ethereum.MintTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "no rpc url",
			content: "ethereum:\n  chain_id: 1\n",
			wantErr: "ethereum.rpc_url is required",
		},
		{
			name:    "no chain id",
			content: "ethereum:\n  rpc_url: http://localhost:8545\n",
			wantErr: "ethereum.chain_id is required",
		},
		{
			name: "no contract",
			content: "ethereum:\n  rpc_url: http://localhost:8545\n  chain_id: 1\n" +
				"  signer_private_key: aa\n",
			wantErr: "ethereum.ticket_contract is required",
		},
		{
			name: "no signer key",
			content: "ethereum:\n  rpc_url: http://localhost:8545\n  chain_id: 1\n" +
				"  ticket_contract: \"0x1\"\n",
			wantErr: "ethereum.signer_private_key is required",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
