package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	xwing "github.com/pqforge/xwing-go"
)

func keygenCmd() *cobra.Command {
	var seedPath, pubPath string

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair and write seed and public key files",
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, sk, err := xwing.GenerateKey()
			if err != nil {
				return err
			}
			defer sk.Zeroize()

			seed := sk.Bytes()
			if err := writeHexFile(seedPath, seed, 0o600); err != nil {
				return err
			}
			if err := writeHexFile(pubPath, pub, 0o644); err != nil {
				return err
			}
			fmt.Printf("Wrote seed to %s and public key to %s\n", seedPath, pubPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&seedPath, "seed", "xwing.seed", "output path for the private key seed")
	cmd.Flags().StringVar(&pubPath, "pub", "xwing.pub", "output path for the encoded public key")
	return cmd
}

func pubkeyCmd() *cobra.Command {
	var seedPath string

	cmd := &cobra.Command{
		Use:   "pubkey",
		Short: "Re-derive the public key from a seed file",
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := readHexFile(seedPath, xwing.SeedSize, "seed")
			if err != nil {
				return err
			}
			pub, sk, err := xwing.NewKeyFromSeed(seed)
			if err != nil {
				return err
			}
			defer sk.Zeroize()
			fmt.Printf("%x\n", pub)
			return nil
		},
	}

	cmd.Flags().StringVar(&seedPath, "seed", "xwing.seed", "path to the private key seed")
	return cmd
}
