package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	xwing "github.com/pqforge/xwing-go"
	"github.com/pqforge/xwing-go/seal"
)

func sealCmd() *cobra.Command {
	var pubPath, inPath, outPath, aad string

	cmd := &cobra.Command{
		Use:   "seal",
		Short: "Encrypt a file to a public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := readHexFile(pubPath, xwing.PublicKeySize, "public key")
			if err != nil {
				return err
			}
			plaintext, err := os.ReadFile(inPath)
			if err != nil {
				return err
			}
			envelope, err := seal.Seal(pub, plaintext, []byte(aad))
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, envelope, 0o644); err != nil {
				return err
			}
			fmt.Printf("Sealed %d bytes to %s\n", len(plaintext), outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&pubPath, "pub", "xwing.pub", "path to the encoded public key")
	cmd.Flags().StringVar(&inPath, "in", "", "plaintext input file")
	cmd.Flags().StringVar(&outPath, "out", "", "sealed output file")
	cmd.Flags().StringVar(&aad, "aad", "", "additional authenticated data")
	cmd.MarkFlagRequired("in")
	cmd.MarkFlagRequired("out")
	return cmd
}

func openCmd() *cobra.Command {
	var seedPath, inPath, outPath, aad string

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Decrypt a sealed file with a seed file",
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := readHexFile(seedPath, xwing.SeedSize, "seed")
			if err != nil {
				return err
			}
			sk, err := xwing.ParsePrivateKey(seed)
			if err != nil {
				return err
			}
			defer sk.Zeroize()

			envelope, err := os.ReadFile(inPath)
			if err != nil {
				return err
			}
			plaintext, err := seal.Open(sk, envelope, []byte(aad))
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, plaintext, 0o600); err != nil {
				return err
			}
			fmt.Printf("Opened %d bytes to %s\n", len(plaintext), outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&seedPath, "seed", "xwing.seed", "path to the private key seed")
	cmd.Flags().StringVar(&inPath, "in", "", "sealed input file")
	cmd.Flags().StringVar(&outPath, "out", "", "plaintext output file")
	cmd.Flags().StringVar(&aad, "aad", "", "additional authenticated data")
	cmd.MarkFlagRequired("in")
	cmd.MarkFlagRequired("out")
	return cmd
}
