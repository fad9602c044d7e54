package commands

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	xwing "github.com/pqforge/xwing-go"
)

func Execute() error {
	root := &cobra.Command{
		Use:           "xwing-cli",
		Short:         "X-Wing hybrid post-quantum KEM CLI",
		Version:       xwing.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(keygenCmd(), pubkeyCmd(), encapCmd(), decapCmd(), sealCmd(), openCmd())
	return root.Execute()
}

func readHexFile(path string, wantLen int, what string) ([]byte, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data, err := hex.DecodeString(strings.TrimSpace(string(text)))
	if err != nil {
		return nil, fmt.Errorf("%s: invalid hex in %s: %w", what, path, err)
	}
	if wantLen > 0 && len(data) != wantLen {
		return nil, fmt.Errorf("%s: %s holds %d bytes, want %d", what, path, len(data), wantLen)
	}
	return data, nil
}

func writeHexFile(path string, data []byte, mode os.FileMode) error {
	return os.WriteFile(path, []byte(hex.EncodeToString(data)+"\n"), mode)
}
